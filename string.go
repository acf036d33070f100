package bintag

import (
	"strconv"
	"strings"
)

// Diagnostic text rendering. Scalars carry a one-letter kind suffix so the
// kind survives the trip to text: 42b, 43s, 44, 45L, 46.5f, 47.5d, 'str'.
// Arrays list their elements in brackets with the same per-element
// convention; tags render their entries in insertion order. None of this is
// part of the wire format.

// String renders the leaf value as diagnostic text.
func (d *Data) String() string {
	var b strings.Builder
	d.render(&b)
	return b.String()
}

// String renders the tag and everything below it as diagnostic text.
func (t *Tag) String() string {
	var b strings.Builder
	t.render(&b)
	return b.String()
}

func (d *Data) render(b *strings.Builder) {
	switch d.typ {
	case TypeByte:
		b.WriteString(strconv.FormatInt(d.intVal, 10))
		b.WriteByte('b')
	case TypeShort:
		b.WriteString(strconv.FormatInt(d.intVal, 10))
		b.WriteByte('s')
	case TypeInt:
		b.WriteString(strconv.FormatInt(d.intVal, 10))
	case TypeLong:
		b.WriteString(strconv.FormatInt(d.intVal, 10))
		b.WriteByte('L')
	case TypeFloat:
		b.WriteString(strconv.FormatFloat(d.floatVal, 'g', -1, 32))
		b.WriteByte('f')
	case TypeDouble:
		b.WriteString(strconv.FormatFloat(d.floatVal, 'g', -1, 64))
		b.WriteByte('d')
	case TypeString:
		renderString(b, d.strVal)
	case TypeByteArray:
		renderArray(b, d.byteArr, func(v byte) {
			b.WriteString(strconv.FormatUint(uint64(v), 10))
			b.WriteByte('b')
		})
	case TypeShortArray:
		renderArray(b, d.shortArr, func(v int16) {
			b.WriteString(strconv.FormatInt(int64(v), 10))
			b.WriteByte('s')
		})
	case TypeIntArray:
		renderArray(b, d.intArr, func(v int32) {
			b.WriteString(strconv.FormatInt(int64(v), 10))
		})
	case TypeLongArray:
		renderArray(b, d.longArr, func(v int64) {
			b.WriteString(strconv.FormatInt(v, 10))
			b.WriteByte('L')
		})
	case TypeFloatArray:
		renderArray(b, d.floatArr, func(v float32) {
			b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
			b.WriteByte('f')
		})
	case TypeDoubleArray:
		renderArray(b, d.doubleArr, func(v float64) {
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			b.WriteByte('d')
		})
	case TypeStringArray:
		renderArray(b, d.strArr, func(v string) {
			renderString(b, v)
		})
	case TypeTagArray:
		renderArray(b, d.tagArr, func(v *Tag) {
			v.render(b)
		})
	}
}

func (t *Tag) render(b *strings.Builder) {
	b.WriteByte('{')
	for i, e := range t.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.name)
		b.WriteString(": ")
		switch n := e.node.(type) {
		case *Data:
			n.render(b)
		case *Tag:
			n.render(b)
		}
	}
	b.WriteByte('}')
}

func renderString(b *strings.Builder, s string) {
	b.WriteByte('\'')
	b.WriteString(s)
	b.WriteByte('\'')
}

func renderArray[T any](b *strings.Builder, arr []T, elem func(T)) {
	b.WriteByte('[')
	for i, v := range arr {
		if i > 0 {
			b.WriteString(", ")
		}
		elem(v)
	}
	b.WriteByte(']')
}
