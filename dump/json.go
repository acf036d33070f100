// Package dump renders tag trees as JSON or YAML for inspection. Both
// renderings are one-way diagnostics: number widths collapse to plain
// numbers, so neither output can be turned back into the original document.
// The binary codec in the parent package is the only wire format.
package dump

import (
	"bytes"

	json "github.com/goccy/go-json"

	"github.com/reoring/bintag"
)

// JSON renders n as compact JSON. Tag entries keep insertion order.
func JSON(n bintag.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n bintag.Node) error {
	switch v := n.(type) {
	case *bintag.Tag:
		buf.WriteByte('{')
		var werr error
		first := true
		v.Each(func(name string, child bintag.Node) bool {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			key, err := json.Marshal(name)
			if err != nil {
				werr = err
				return false
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSON(buf, child); err != nil {
				werr = err
				return false
			}
			return true
		})
		if werr != nil {
			return werr
		}
		buf.WriteByte('}')
		return nil
	case *bintag.Data:
		if v.Type() == bintag.TypeTagArray {
			tags, err := v.AsTagArray()
			if err != nil {
				return err
			}
			buf.WriteByte('[')
			for i, t := range tags {
				if i > 0 {
					buf.WriteByte(',')
				}
				if err := writeJSON(buf, t); err != nil {
					return err
				}
			}
			buf.WriteByte(']')
			return nil
		}
		out, err := json.Marshal(scalarValue(v))
		if err != nil {
			return err
		}
		buf.Write(out)
	}
	return nil
}

// scalarValue unwraps the raw payload, widening byte arrays to ints so the
// JSON and YAML encoders render a numeric list instead of base64.
func scalarValue(d *bintag.Data) any {
	if d.Type() != bintag.TypeByteArray {
		return d.Value()
	}
	arr, _ := d.AsByteArray()
	ints := make([]int, len(arr))
	for i, b := range arr {
		ints[i] = int(b)
	}
	return ints
}
