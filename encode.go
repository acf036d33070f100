package bintag

import (
	"encoding/binary"
	"io"
	"math"
)

// Encode writes the full encoding of n — one discriminant byte followed by
// the payload — to w. Multi-byte values are big-endian. I/O errors from w
// are returned unchanged.
func Encode(w io.Writer, n Node) error {
	e := &encoder{w: w}
	return e.node(n)
}

type encoder struct {
	w   io.Writer
	buf [8]byte
}

func (e *encoder) node(n Node) error {
	if err := e.u8(byte(n.Type())); err != nil {
		return err
	}
	switch v := n.(type) {
	case *Data:
		return e.data(v)
	case *Tag:
		return e.tagBody(v)
	}
	return nil // unreachable, Node is sealed
}

func (e *encoder) data(d *Data) error {
	if d.typ.IsArray() {
		if err := e.i32(int32(d.Size())); err != nil {
			return err
		}
	}
	switch d.typ {
	case TypeByte:
		return e.u8(byte(d.intVal))
	case TypeShort:
		return e.u16(uint16(d.intVal))
	case TypeInt:
		return e.u32(uint32(d.intVal))
	case TypeLong:
		return e.u64(uint64(d.intVal))
	case TypeFloat:
		return e.u32(math.Float32bits(float32(d.floatVal)))
	case TypeDouble:
		return e.u64(math.Float64bits(d.floatVal))
	case TypeString:
		return e.str(d.strVal)
	case TypeByteArray:
		_, err := e.w.Write(d.byteArr)
		return err
	case TypeShortArray:
		for _, v := range d.shortArr {
			if err := e.u16(uint16(v)); err != nil {
				return err
			}
		}
	case TypeIntArray:
		for _, v := range d.intArr {
			if err := e.u32(uint32(v)); err != nil {
				return err
			}
		}
	case TypeLongArray:
		for _, v := range d.longArr {
			if err := e.u64(uint64(v)); err != nil {
				return err
			}
		}
	case TypeFloatArray:
		for _, v := range d.floatArr {
			if err := e.u32(math.Float32bits(v)); err != nil {
				return err
			}
		}
	case TypeDoubleArray:
		for _, v := range d.doubleArr {
			if err := e.u64(math.Float64bits(v)); err != nil {
				return err
			}
		}
	case TypeStringArray:
		for _, v := range d.strArr {
			if err := e.str(v); err != nil {
				return err
			}
		}
	case TypeTagArray:
		// The array header fixed the element kind, so each element is
		// written as bare tag contents with no discriminant byte.
		for _, t := range d.tagArr {
			if err := e.tagBody(t); err != nil {
				return err
			}
		}
	}
	return nil
}

// tagBody writes tag contents only: entry count, then name plus full child
// encoding per entry, in insertion order.
func (e *encoder) tagBody(t *Tag) error {
	if err := e.i32(int32(t.Len())); err != nil {
		return err
	}
	for _, en := range t.entries {
		if err := e.str(en.name); err != nil {
			return err
		}
		if err := e.node(en.node); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) str(s string) error {
	if len(s) > math.MaxUint16 {
		return issuef("/", CodeMalformed, "string of %d bytes exceeds the u16 length prefix", len(s))
	}
	if err := e.u16(uint16(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, s)
	return err
}

func (e *encoder) u8(v byte) error {
	e.buf[0] = v
	_, err := e.w.Write(e.buf[:1])
	return err
}

func (e *encoder) u16(v uint16) error {
	binary.BigEndian.PutUint16(e.buf[:2], v)
	_, err := e.w.Write(e.buf[:2])
	return err
}

func (e *encoder) u32(v uint32) error {
	binary.BigEndian.PutUint32(e.buf[:4], v)
	_, err := e.w.Write(e.buf[:4])
	return err
}

func (e *encoder) u64(v uint64) error {
	binary.BigEndian.PutUint64(e.buf[:8], v)
	_, err := e.w.Write(e.buf[:8])
	return err
}

func (e *encoder) i32(v int32) error { return e.u32(uint32(v)) }
