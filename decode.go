package bintag

import (
	"encoding/binary"
	"io"
	"math"
	"strconv"
)

// Hostile streams can declare element counts far larger than the bytes that
// follow. Decoding grows arrays by append with at most this much capacity
// reserved up front, so a forged count never forces a huge allocation.
const allocChunk = 1 << 16

// Decode reads one full node encoding from r: a leading discriminant byte,
// then the payload it selects. Decoding is driven entirely by the
// discriminants in the stream; no external schema is consulted.
//
// An empty source returns io.EOF unchanged; a stream that ends mid-value
// returns io.ErrUnexpectedEOF. Discriminant bytes outside the valid range
// fail with CodeUnknownType, negative element counts with CodeMalformed, and
// the reported Issue.Path names the entry being decoded when the failure is
// below the root.
func Decode(r io.Reader) (Node, error) {
	d := &decoder{r: r}
	if _, err := io.ReadFull(d.r, d.buf[:1]); err != nil {
		return nil, err
	}
	return d.node(d.buf[0], "")
}

// DecodeTag reads a root document, failing with CodeTypeMismatch when the
// root node is not composite.
func DecodeTag(r io.Reader) (*Tag, error) {
	n, err := Decode(r)
	if err != nil {
		return nil, err
	}
	t, ok := n.(*Tag)
	if !ok {
		return nil, issuef("/", CodeTypeMismatch, "root node is %s, not %s", n.Type(), TypeTag)
	}
	return t, nil
}

type decoder struct {
	r   io.Reader
	buf [8]byte
}

func at(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

func (d *decoder) node(id byte, path string) (Node, error) {
	if id >= typeCount {
		return nil, issuef(at(path), CodeUnknownType, "unknown type id %d", id)
	}
	typ := Type(id)
	if typ == TypeTag {
		return d.tagBody(path)
	}
	return d.data(typ, path)
}

func (d *decoder) data(typ Type, path string) (*Data, error) {
	size := 0
	if typ.IsArray() {
		n, err := d.i32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, issuef(at(path), CodeMalformed, "negative element count %d", n)
		}
		size = int(n)
	}
	switch typ {
	case TypeByte:
		v, err := d.u8()
		if err != nil {
			return nil, err
		}
		return OfByte(v), nil
	case TypeShort:
		v, err := d.u16()
		if err != nil {
			return nil, err
		}
		return OfShort(int16(v)), nil
	case TypeInt:
		v, err := d.u32()
		if err != nil {
			return nil, err
		}
		return OfInt(int32(v)), nil
	case TypeLong:
		v, err := d.u64()
		if err != nil {
			return nil, err
		}
		return OfLong(int64(v)), nil
	case TypeFloat:
		v, err := d.u32()
		if err != nil {
			return nil, err
		}
		return OfFloat(math.Float32frombits(v)), nil
	case TypeDouble:
		v, err := d.u64()
		if err != nil {
			return nil, err
		}
		return OfDouble(math.Float64frombits(v)), nil
	case TypeString:
		s, err := d.str()
		if err != nil {
			return nil, err
		}
		return OfString(s), nil
	case TypeByteArray:
		arr := make([]byte, 0, min(size, allocChunk))
		for len(arr) < size {
			chunk := min(size-len(arr), allocChunk)
			old := len(arr)
			arr = append(arr, make([]byte, chunk)...)
			if err := d.full(arr[old:]); err != nil {
				return nil, err
			}
		}
		return &Data{typ: typ, byteArr: arr}, nil
	case TypeShortArray:
		arr := make([]int16, 0, min(size, allocChunk))
		for i := 0; i < size; i++ {
			v, err := d.u16()
			if err != nil {
				return nil, err
			}
			arr = append(arr, int16(v))
		}
		return &Data{typ: typ, shortArr: arr}, nil
	case TypeIntArray:
		arr := make([]int32, 0, min(size, allocChunk))
		for i := 0; i < size; i++ {
			v, err := d.u32()
			if err != nil {
				return nil, err
			}
			arr = append(arr, int32(v))
		}
		return &Data{typ: typ, intArr: arr}, nil
	case TypeLongArray:
		arr := make([]int64, 0, min(size, allocChunk))
		for i := 0; i < size; i++ {
			v, err := d.u64()
			if err != nil {
				return nil, err
			}
			arr = append(arr, int64(v))
		}
		return &Data{typ: typ, longArr: arr}, nil
	case TypeFloatArray:
		arr := make([]float32, 0, min(size, allocChunk))
		for i := 0; i < size; i++ {
			v, err := d.u32()
			if err != nil {
				return nil, err
			}
			arr = append(arr, math.Float32frombits(v))
		}
		return &Data{typ: typ, floatArr: arr}, nil
	case TypeDoubleArray:
		arr := make([]float64, 0, min(size, allocChunk))
		for i := 0; i < size; i++ {
			v, err := d.u64()
			if err != nil {
				return nil, err
			}
			arr = append(arr, math.Float64frombits(v))
		}
		return &Data{typ: typ, doubleArr: arr}, nil
	case TypeStringArray:
		arr := make([]string, 0, min(size, allocChunk))
		for i := 0; i < size; i++ {
			s, err := d.str()
			if err != nil {
				return nil, err
			}
			arr = append(arr, s)
		}
		return &Data{typ: typ, strArr: arr}, nil
	default: // TypeTagArray
		arr := make([]*Tag, 0, min(size, allocChunk))
		for i := 0; i < size; i++ {
			// Bare tag contents, no per-element discriminant.
			t, err := d.tagBody(path + "/" + strconv.Itoa(i))
			if err != nil {
				return nil, err
			}
			arr = append(arr, t)
		}
		return &Data{typ: typ, tagArr: arr}, nil
	}
}

// tagBody reads tag contents: entry count, then name plus full child
// encoding per entry.
func (d *decoder) tagBody(path string) (*Tag, error) {
	n, err := d.i32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, issuef(at(path), CodeMalformed, "negative entry count %d", n)
	}
	t := NewTag(min(int(n), allocChunk))
	for i := int32(0); i < n; i++ {
		name, err := d.str()
		if err != nil {
			return nil, err
		}
		id, err := d.u8()
		if err != nil {
			return nil, err
		}
		child, err := d.node(id, path+"/"+name)
		if err != nil {
			return nil, err
		}
		t.put(name, child)
	}
	return t, nil
}

func (d *decoder) str() (string, error) {
	n, err := d.u16()
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if err := d.full(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// full fills p from the source. Running out of bytes mid-value is a
// truncated stream, so a clean EOF here is reported as unexpected.
func (d *decoder) full(p []byte) error {
	if _, err := io.ReadFull(d.r, p); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}

func (d *decoder) u8() (byte, error) {
	if err := d.full(d.buf[:1]); err != nil {
		return 0, err
	}
	return d.buf[0], nil
}

func (d *decoder) u16() (uint16, error) {
	if err := d.full(d.buf[:2]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(d.buf[:2]), nil
}

func (d *decoder) u32() (uint32, error) {
	if err := d.full(d.buf[:4]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(d.buf[:4]), nil
}

func (d *decoder) u64() (uint64, error) {
	if err := d.full(d.buf[:8]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(d.buf[:8]), nil
}

func (d *decoder) i32() (int32, error) {
	v, err := d.u32()
	return int32(v), err
}
