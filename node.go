package bintag

// Node is a value in a tag tree: either a *Data leaf (scalar or homogeneous
// array) or a nested *Tag (named mapping). The set is closed — only types in
// this package implement Node — so a type switch over the two concrete kinds
// is exhaustive.
type Node interface {
	// Type returns the discriminant of this node. It never changes after
	// construction.
	Type() Type

	// Copy returns a deep clone: array payloads are reallocated and nested
	// tags cloned recursively, so mutating the clone never affects the
	// original.
	Copy() Node

	// Equal reports structural equality as defined per kind: discriminant,
	// size and element-wise payload for leaves; same name set with equal
	// values for tags.
	Equal(other Node) bool

	// AsData returns the node as a leaf value, failing with
	// CodeCompositeNotData when the node is a Tag.
	AsData() (*Data, error)

	// AsTag returns the node as a tag, failing with CodeTypeMismatch when
	// the node is a leaf value.
	AsTag() (*Tag, error)

	// String renders the node as diagnostic text. The rendering is not part
	// of the wire format.
	String() string

	node() // sealed marker — only types in this package implement Node
}
