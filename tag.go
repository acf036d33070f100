package bintag

import (
	"slices"
)

type entry struct {
	name string
	node Node
}

// Tag is a named mapping of nodes, the only composite kind. Entries keep
// insertion order for deterministic rendering and encoding; order is not
// part of equality. Names are unique.
//
// A Tag is mutable in place (Set/Remove); the nodes it holds are owned
// exclusively by it, so trees never alias and deep copy always terminates.
type Tag struct {
	entries []entry
	index   map[string]int
}

// NewTag returns an empty Tag. The capacity hint only affects preallocation,
// never observable behavior.
func NewTag(capacity int) *Tag {
	if capacity < 0 {
		capacity = 0
	}
	return &Tag{
		entries: make([]entry, 0, capacity),
		index:   make(map[string]int, capacity),
	}
}

// Entry pairs a name with a node for TagOf.
type Entry struct {
	Name string
	Node Node
}

// TagOf builds a Tag from entries in the given order. A later duplicate name
// replaces the earlier value in place.
func TagOf(entries ...Entry) *Tag {
	t := NewTag(len(entries))
	for _, e := range entries {
		t.put(e.Name, e.Node)
	}
	return t
}

// TagFrom builds a Tag from a plain map, inserting names in sorted order so
// construction is deterministic.
func TagFrom(m map[string]Node) *Tag {
	t := NewTag(len(m))
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		t.put(name, m[name])
	}
	return t
}

func (t *Tag) put(name string, n Node) {
	if i, ok := t.index[name]; ok {
		t.entries[i].node = n
		return
	}
	t.index[name] = len(t.entries)
	t.entries = append(t.entries, entry{name: name, node: n})
}

// Len returns the number of entries.
func (t *Tag) Len() int { return len(t.entries) }

// Names returns the entry names in insertion order.
func (t *Tag) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.name
	}
	return names
}

// Each calls fn for every entry in insertion order, stopping early when fn
// returns false. The Tag must not be mutated during iteration. This is the
// read-only enumeration view; there is no way to write through it.
func (t *Tag) Each(fn func(name string, n Node) bool) {
	for _, e := range t.entries {
		if !fn(e.name, e.node) {
			return
		}
	}
}

// Get returns the node stored under name, failing with CodeKeyNotFound when
// no entry exists.
func (t *Tag) Get(name string) (Node, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, issuef("/"+name, CodeKeyNotFound, "no such entry")
	}
	return t.entries[i].node, nil
}

// GetTyped is Get plus a discriminant check, failing with CodeTypeMismatch
// when the stored node is of a different kind.
func (t *Tag) GetTyped(name string, typ Type) (Node, error) {
	n, err := t.Get(name)
	if err != nil {
		return nil, err
	}
	if n.Type() != typ {
		return nil, issuef("/"+name, CodeTypeMismatch, "expected %s, got %s", typ, n.Type())
	}
	return n, nil
}

// GetData returns the leaf value under name, failing with
// CodeCompositeNotData when the entry is a nested Tag.
func (t *Tag) GetData(name string) (*Data, error) {
	n, err := t.Get(name)
	if err != nil {
		return nil, err
	}
	d, ok := n.(*Data)
	if !ok {
		return nil, issuef("/"+name, CodeCompositeNotData, "entry is a tag, not a leaf value")
	}
	return d, nil
}

// GetDataTyped is GetData with a discriminant check. Requesting TypeTag is
// itself a CodeCompositeNotData failure: the composite kind is never a leaf.
func (t *Tag) GetDataTyped(name string, typ Type) (*Data, error) {
	if typ == TypeTag {
		return nil, issuef("/"+name, CodeCompositeNotData, "requested type must not be %s", TypeTag)
	}
	n, err := t.GetTyped(name, typ)
	if err != nil {
		return nil, err
	}
	return n.(*Data), nil
}

// GetTag returns the nested Tag stored under name.
func (t *Tag) GetTag(name string) (*Tag, error) {
	n, err := t.GetTyped(name, TypeTag)
	if err != nil {
		return nil, err
	}
	return n.(*Tag), nil
}

// GetByte returns the byte scalar stored under name.
func (t *Tag) GetByte(name string) (byte, error) {
	d, err := t.GetDataTyped(name, TypeByte)
	if err != nil {
		return 0, err
	}
	return d.AsByte()
}

// GetShort returns the 16-bit scalar stored under name.
func (t *Tag) GetShort(name string) (int16, error) {
	d, err := t.GetDataTyped(name, TypeShort)
	if err != nil {
		return 0, err
	}
	return d.AsShort()
}

// GetInt returns the 32-bit scalar stored under name.
func (t *Tag) GetInt(name string) (int32, error) {
	d, err := t.GetDataTyped(name, TypeInt)
	if err != nil {
		return 0, err
	}
	return d.AsInt()
}

// GetLong returns the 64-bit scalar stored under name.
func (t *Tag) GetLong(name string) (int64, error) {
	d, err := t.GetDataTyped(name, TypeLong)
	if err != nil {
		return 0, err
	}
	return d.AsLong()
}

// GetFloat returns the 32-bit float scalar stored under name.
func (t *Tag) GetFloat(name string) (float32, error) {
	d, err := t.GetDataTyped(name, TypeFloat)
	if err != nil {
		return 0, err
	}
	return d.AsFloat()
}

// GetDouble returns the 64-bit float scalar stored under name.
func (t *Tag) GetDouble(name string) (float64, error) {
	d, err := t.GetDataTyped(name, TypeDouble)
	if err != nil {
		return 0, err
	}
	return d.AsDouble()
}

// GetString returns the string scalar stored under name.
func (t *Tag) GetString(name string) (string, error) {
	d, err := t.GetDataTyped(name, TypeString)
	if err != nil {
		return "", err
	}
	return d.AsString()
}

// GetByteArray returns the byte array stored under name.
func (t *Tag) GetByteArray(name string) ([]byte, error) {
	d, err := t.GetDataTyped(name, TypeByteArray)
	if err != nil {
		return nil, err
	}
	return d.AsByteArray()
}

// GetShortArray returns the 16-bit integer array stored under name.
func (t *Tag) GetShortArray(name string) ([]int16, error) {
	d, err := t.GetDataTyped(name, TypeShortArray)
	if err != nil {
		return nil, err
	}
	return d.AsShortArray()
}

// GetIntArray returns the 32-bit integer array stored under name.
func (t *Tag) GetIntArray(name string) ([]int32, error) {
	d, err := t.GetDataTyped(name, TypeIntArray)
	if err != nil {
		return nil, err
	}
	return d.AsIntArray()
}

// GetLongArray returns the 64-bit integer array stored under name.
func (t *Tag) GetLongArray(name string) ([]int64, error) {
	d, err := t.GetDataTyped(name, TypeLongArray)
	if err != nil {
		return nil, err
	}
	return d.AsLongArray()
}

// GetFloatArray returns the 32-bit float array stored under name.
func (t *Tag) GetFloatArray(name string) ([]float32, error) {
	d, err := t.GetDataTyped(name, TypeFloatArray)
	if err != nil {
		return nil, err
	}
	return d.AsFloatArray()
}

// GetDoubleArray returns the 64-bit float array stored under name.
func (t *Tag) GetDoubleArray(name string) ([]float64, error) {
	d, err := t.GetDataTyped(name, TypeDoubleArray)
	if err != nil {
		return nil, err
	}
	return d.AsDoubleArray()
}

// GetStringArray returns the string array stored under name.
func (t *Tag) GetStringArray(name string) ([]string, error) {
	d, err := t.GetDataTyped(name, TypeStringArray)
	if err != nil {
		return nil, err
	}
	return d.AsStringArray()
}

// GetTagArray returns the tag array stored under name.
func (t *Tag) GetTagArray(name string) ([]*Tag, error) {
	d, err := t.GetDataTyped(name, TypeTagArray)
	if err != nil {
		return nil, err
	}
	return d.AsTagArray()
}

// SetNode inserts or replaces the entry under name. With checkType enabled,
// an existing entry may only be replaced by a node of the same kind;
// violating that fails with CodeIncompatibleReplacement and leaves the Tag
// unchanged. Inserting under a fresh name never fails.
func (t *Tag) SetNode(name string, n Node, checkType bool) error {
	if checkType {
		if i, ok := t.index[name]; ok {
			if prev := t.entries[i].node.Type(); prev != n.Type() {
				return issuef("/"+name, CodeIncompatibleReplacement, "entry is %s, refusing to store %s", prev, n.Type())
			}
		}
	}
	t.put(name, n)
	return nil
}

// Set is SetNode with type checking enabled.
func (t *Tag) Set(name string, n Node) error { return t.SetNode(name, n, true) }

// SetByte stores a byte scalar under name, type-checked.
func (t *Tag) SetByte(name string, v byte) error { return t.Set(name, OfByte(v)) }

// SetShort stores a 16-bit scalar under name, type-checked.
func (t *Tag) SetShort(name string, v int16) error { return t.Set(name, OfShort(v)) }

// SetInt stores a 32-bit scalar under name, type-checked.
func (t *Tag) SetInt(name string, v int32) error { return t.Set(name, OfInt(v)) }

// SetLong stores a 64-bit scalar under name, type-checked.
func (t *Tag) SetLong(name string, v int64) error { return t.Set(name, OfLong(v)) }

// SetFloat stores a 32-bit float scalar under name, type-checked.
func (t *Tag) SetFloat(name string, v float32) error { return t.Set(name, OfFloat(v)) }

// SetDouble stores a 64-bit float scalar under name, type-checked.
func (t *Tag) SetDouble(name string, v float64) error { return t.Set(name, OfDouble(v)) }

// SetString stores a string scalar under name, type-checked.
func (t *Tag) SetString(name string, v string) error { return t.Set(name, OfString(v)) }

// SetTag stores a nested Tag under name, type-checked.
func (t *Tag) SetTag(name string, v *Tag) error { return t.Set(name, v) }

// SetByteArray stores a byte array under name, type-checked.
func (t *Tag) SetByteArray(name string, v ...byte) error { return t.Set(name, OfByteArray(v...)) }

// SetShortArray stores a 16-bit integer array under name, type-checked.
func (t *Tag) SetShortArray(name string, v ...int16) error { return t.Set(name, OfShortArray(v...)) }

// SetIntArray stores a 32-bit integer array under name, type-checked.
func (t *Tag) SetIntArray(name string, v ...int32) error { return t.Set(name, OfIntArray(v...)) }

// SetLongArray stores a 64-bit integer array under name, type-checked.
func (t *Tag) SetLongArray(name string, v ...int64) error { return t.Set(name, OfLongArray(v...)) }

// SetFloatArray stores a 32-bit float array under name, type-checked.
func (t *Tag) SetFloatArray(name string, v ...float32) error { return t.Set(name, OfFloatArray(v...)) }

// SetDoubleArray stores a 64-bit float array under name, type-checked.
func (t *Tag) SetDoubleArray(name string, v ...float64) error {
	return t.Set(name, OfDoubleArray(v...))
}

// SetStringArray stores a string array under name, type-checked.
func (t *Tag) SetStringArray(name string, v ...string) error { return t.Set(name, OfStringArray(v...)) }

// SetTagArray stores a tag array under name, type-checked.
func (t *Tag) SetTagArray(name string, v ...*Tag) error { return t.Set(name, OfTagArray(v...)) }

// Remove deletes the entry under name and returns the previous node, or
// (nil, false) when no entry exists.
func (t *Tag) Remove(name string) (Node, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	prev := t.entries[i].node
	t.entries = slices.Delete(t.entries, i, i+1)
	delete(t.index, name)
	for j := i; j < len(t.entries); j++ {
		t.index[t.entries[j].name] = j
	}
	return prev, true
}

// Type returns TypeTag.
func (t *Tag) Type() Type { return TypeTag }

// Copy returns a deep clone: every contained node is cloned recursively.
func (t *Tag) Copy() Node { return t.copyTag() }

func (t *Tag) copyTag() *Tag {
	c := NewTag(len(t.entries))
	for _, e := range t.entries {
		c.put(e.name, e.node.Copy())
	}
	return c
}

// Equal reports whether both tags hold the same set of names mapped to equal
// nodes. Insertion order is ignored.
func (t *Tag) Equal(other Node) bool {
	o, ok := other.(*Tag)
	if !ok || len(o.entries) != len(t.entries) {
		return false
	}
	for _, e := range t.entries {
		i, ok := o.index[e.name]
		if !ok || !e.node.Equal(o.entries[i].node) {
			return false
		}
	}
	return true
}

// AsData fails: the composite kind is never a leaf value.
func (t *Tag) AsData() (*Data, error) {
	return nil, issuef("/", CodeCompositeNotData, "node is a tag, not a leaf value")
}

// AsTag returns the node itself.
func (t *Tag) AsTag() (*Tag, error) { return t, nil }

func (*Tag) node() {}
