package dump

import (
	"gopkg.in/yaml.v3"

	"github.com/reoring/bintag"
)

// YAML renders n as a YAML document. The tree is built from yaml mapping
// nodes directly, so tag entries keep insertion order.
func YAML(n bintag.Node) ([]byte, error) {
	node, err := yamlNode(n)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func yamlNode(n bintag.Node) (*yaml.Node, error) {
	switch v := n.(type) {
	case *bintag.Tag:
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		var werr error
		v.Each(func(name string, child bintag.Node) bool {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
			cn, err := yamlNode(child)
			if err != nil {
				werr = err
				return false
			}
			m.Content = append(m.Content, key, cn)
			return true
		})
		if werr != nil {
			return nil, werr
		}
		return m, nil
	case *bintag.Data:
		if v.Type() == bintag.TypeTagArray {
			tags, err := v.AsTagArray()
			if err != nil {
				return nil, err
			}
			seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for _, t := range tags {
				cn, err := yamlNode(t)
				if err != nil {
					return nil, err
				}
				seq.Content = append(seq.Content, cn)
			}
			return seq, nil
		}
		var node yaml.Node
		if err := node.Encode(scalarValue(v)); err != nil {
			return nil, err
		}
		return &node, nil
	}
	return nil, nil // unreachable, Node is sealed
}
