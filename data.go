package bintag

import (
	"math"
	"slices"
)

// Data is a leaf value: exactly one scalar or one homogeneous array, fixed
// at construction. The payload is owned by the Data — constructors copy
// caller-supplied slices — and is never mutated afterwards; replacing a
// value means storing a new node in the parent Tag.
//
// Accessors expose the backing array for array kinds; callers that need to
// mutate must go through Copy first.
type Data struct {
	typ Type

	// Exactly one of the fields below carries the payload, selected by typ.
	intVal    int64   // byte, short, int, long
	floatVal  float64 // float, double
	strVal    string
	byteArr   []byte
	shortArr  []int16
	intArr    []int32
	longArr   []int64
	floatArr  []float32
	doubleArr []float64
	strArr    []string
	tagArr    []*Tag
}

// OfByte returns a Data holding a single 8-bit value.
func OfByte(v byte) *Data { return &Data{typ: TypeByte, intVal: int64(v)} }

// OfShort returns a Data holding a single 16-bit integer.
func OfShort(v int16) *Data { return &Data{typ: TypeShort, intVal: int64(v)} }

// OfInt returns a Data holding a single 32-bit integer.
func OfInt(v int32) *Data { return &Data{typ: TypeInt, intVal: int64(v)} }

// OfLong returns a Data holding a single 64-bit integer.
func OfLong(v int64) *Data { return &Data{typ: TypeLong, intVal: v} }

// OfFloat returns a Data holding a single 32-bit float.
func OfFloat(v float32) *Data { return &Data{typ: TypeFloat, floatVal: float64(v)} }

// OfDouble returns a Data holding a single 64-bit float.
func OfDouble(v float64) *Data { return &Data{typ: TypeDouble, floatVal: v} }

// OfString returns a Data holding a single UTF-8 string.
func OfString(v string) *Data { return &Data{typ: TypeString, strVal: v} }

// OfByteArray returns a Data holding a copy of the given bytes.
func OfByteArray(v ...byte) *Data { return &Data{typ: TypeByteArray, byteArr: slices.Clone(v)} }

// OfShortArray returns a Data holding a copy of the given 16-bit integers.
func OfShortArray(v ...int16) *Data { return &Data{typ: TypeShortArray, shortArr: slices.Clone(v)} }

// OfIntArray returns a Data holding a copy of the given 32-bit integers.
func OfIntArray(v ...int32) *Data { return &Data{typ: TypeIntArray, intArr: slices.Clone(v)} }

// OfLongArray returns a Data holding a copy of the given 64-bit integers.
func OfLongArray(v ...int64) *Data { return &Data{typ: TypeLongArray, longArr: slices.Clone(v)} }

// OfFloatArray returns a Data holding a copy of the given 32-bit floats.
func OfFloatArray(v ...float32) *Data { return &Data{typ: TypeFloatArray, floatArr: slices.Clone(v)} }

// OfDoubleArray returns a Data holding a copy of the given 64-bit floats.
func OfDoubleArray(v ...float64) *Data {
	return &Data{typ: TypeDoubleArray, doubleArr: slices.Clone(v)}
}

// OfStringArray returns a Data holding a copy of the given strings.
func OfStringArray(v ...string) *Data { return &Data{typ: TypeStringArray, strArr: slices.Clone(v)} }

// OfTagArray returns a Data holding the given tags. The slice is copied;
// the tags themselves transfer ownership to the new Data.
func OfTagArray(v ...*Tag) *Data { return &Data{typ: TypeTagArray, tagArr: slices.Clone(v)} }

// Type returns the discriminant fixed at construction.
func (d *Data) Type() Type { return d.typ }

// Size returns 1 for scalar kinds and the element count for array kinds.
func (d *Data) Size() int {
	switch d.typ {
	case TypeByteArray:
		return len(d.byteArr)
	case TypeShortArray:
		return len(d.shortArr)
	case TypeIntArray:
		return len(d.intArr)
	case TypeLongArray:
		return len(d.longArr)
	case TypeFloatArray:
		return len(d.floatArr)
	case TypeDoubleArray:
		return len(d.doubleArr)
	case TypeStringArray:
		return len(d.strArr)
	case TypeTagArray:
		return len(d.tagArr)
	default:
		return 1
	}
}

func (d *Data) mismatch(want Type) error {
	return issuef("/", CodeTypeMismatch, "expected %s, got %s", want, d.typ)
}

// AsByte returns the scalar byte payload. There is no widening: only a Data
// constructed with OfByte succeeds. The same rule applies to every accessor
// below.
func (d *Data) AsByte() (byte, error) {
	if d.typ != TypeByte {
		return 0, d.mismatch(TypeByte)
	}
	return byte(d.intVal), nil
}

// AsShort returns the scalar 16-bit payload.
func (d *Data) AsShort() (int16, error) {
	if d.typ != TypeShort {
		return 0, d.mismatch(TypeShort)
	}
	return int16(d.intVal), nil
}

// AsInt returns the scalar 32-bit payload.
func (d *Data) AsInt() (int32, error) {
	if d.typ != TypeInt {
		return 0, d.mismatch(TypeInt)
	}
	return int32(d.intVal), nil
}

// AsLong returns the scalar 64-bit payload.
func (d *Data) AsLong() (int64, error) {
	if d.typ != TypeLong {
		return 0, d.mismatch(TypeLong)
	}
	return d.intVal, nil
}

// AsFloat returns the scalar 32-bit float payload.
func (d *Data) AsFloat() (float32, error) {
	if d.typ != TypeFloat {
		return 0, d.mismatch(TypeFloat)
	}
	return float32(d.floatVal), nil
}

// AsDouble returns the scalar 64-bit float payload.
func (d *Data) AsDouble() (float64, error) {
	if d.typ != TypeDouble {
		return 0, d.mismatch(TypeDouble)
	}
	return d.floatVal, nil
}

// AsString returns the scalar string payload.
func (d *Data) AsString() (string, error) {
	if d.typ != TypeString {
		return "", d.mismatch(TypeString)
	}
	return d.strVal, nil
}

// AsByteArray returns the backing byte array.
func (d *Data) AsByteArray() ([]byte, error) {
	if d.typ != TypeByteArray {
		return nil, d.mismatch(TypeByteArray)
	}
	return d.byteArr, nil
}

// AsShortArray returns the backing 16-bit integer array.
func (d *Data) AsShortArray() ([]int16, error) {
	if d.typ != TypeShortArray {
		return nil, d.mismatch(TypeShortArray)
	}
	return d.shortArr, nil
}

// AsIntArray returns the backing 32-bit integer array.
func (d *Data) AsIntArray() ([]int32, error) {
	if d.typ != TypeIntArray {
		return nil, d.mismatch(TypeIntArray)
	}
	return d.intArr, nil
}

// AsLongArray returns the backing 64-bit integer array.
func (d *Data) AsLongArray() ([]int64, error) {
	if d.typ != TypeLongArray {
		return nil, d.mismatch(TypeLongArray)
	}
	return d.longArr, nil
}

// AsFloatArray returns the backing 32-bit float array.
func (d *Data) AsFloatArray() ([]float32, error) {
	if d.typ != TypeFloatArray {
		return nil, d.mismatch(TypeFloatArray)
	}
	return d.floatArr, nil
}

// AsDoubleArray returns the backing 64-bit float array.
func (d *Data) AsDoubleArray() ([]float64, error) {
	if d.typ != TypeDoubleArray {
		return nil, d.mismatch(TypeDoubleArray)
	}
	return d.doubleArr, nil
}

// AsStringArray returns the backing string array.
func (d *Data) AsStringArray() ([]string, error) {
	if d.typ != TypeStringArray {
		return nil, d.mismatch(TypeStringArray)
	}
	return d.strArr, nil
}

// AsTagArray returns the backing tag array.
func (d *Data) AsTagArray() ([]*Tag, error) {
	if d.typ != TypeTagArray {
		return nil, d.mismatch(TypeTagArray)
	}
	return d.tagArr, nil
}

// AsData returns the node itself; a Data always is one.
func (d *Data) AsData() (*Data, error) { return d, nil }

// AsTag fails: a leaf value is never a tag.
func (d *Data) AsTag() (*Tag, error) {
	return nil, issuef("/", CodeTypeMismatch, "expected %s, got %s", TypeTag, d.typ)
}

// Value returns the raw payload: the scalar itself, or a defensive copy of
// the array for array kinds, so mutating the result never touches the stored
// payload. Intended for generic rendering; typed access goes through the As
// accessors.
func (d *Data) Value() any {
	switch d.typ {
	case TypeByte:
		return byte(d.intVal)
	case TypeShort:
		return int16(d.intVal)
	case TypeInt:
		return int32(d.intVal)
	case TypeLong:
		return d.intVal
	case TypeFloat:
		return float32(d.floatVal)
	case TypeDouble:
		return d.floatVal
	case TypeString:
		return d.strVal
	case TypeByteArray:
		return slices.Clone(d.byteArr)
	case TypeShortArray:
		return slices.Clone(d.shortArr)
	case TypeIntArray:
		return slices.Clone(d.intArr)
	case TypeLongArray:
		return slices.Clone(d.longArr)
	case TypeFloatArray:
		return slices.Clone(d.floatArr)
	case TypeDoubleArray:
		return slices.Clone(d.doubleArr)
	case TypeStringArray:
		return slices.Clone(d.strArr)
	default:
		tags := make([]*Tag, len(d.tagArr))
		for i, t := range d.tagArr {
			tags[i] = t.copyTag()
		}
		return tags
	}
}

// Copy returns a deep clone. Scalar kinds are value copies; array kinds get
// freshly allocated backing storage, and tag arrays clone every element.
func (d *Data) Copy() Node {
	c := &Data{typ: d.typ, intVal: d.intVal, floatVal: d.floatVal, strVal: d.strVal}
	switch d.typ {
	case TypeByteArray:
		c.byteArr = slices.Clone(d.byteArr)
	case TypeShortArray:
		c.shortArr = slices.Clone(d.shortArr)
	case TypeIntArray:
		c.intArr = slices.Clone(d.intArr)
	case TypeLongArray:
		c.longArr = slices.Clone(d.longArr)
	case TypeFloatArray:
		c.floatArr = slices.Clone(d.floatArr)
	case TypeDoubleArray:
		c.doubleArr = slices.Clone(d.doubleArr)
	case TypeStringArray:
		c.strArr = slices.Clone(d.strArr)
	case TypeTagArray:
		c.tagArr = make([]*Tag, len(d.tagArr))
		for i, t := range d.tagArr {
			c.tagArr[i] = t.copyTag()
		}
	}
	return c
}

// Equal reports whether other is a Data of the same kind and size with an
// element-wise equal payload. Arrays compare by value, never by identity.
// Float kinds compare by bit pattern, so a NaN payload equals itself and
// documents holding NaN survive the copy and round-trip equality checks.
func (d *Data) Equal(other Node) bool {
	o, ok := other.(*Data)
	if !ok || o.typ != d.typ || o.Size() != d.Size() {
		return false
	}
	switch d.typ {
	case TypeByte, TypeShort, TypeInt, TypeLong:
		return d.intVal == o.intVal
	case TypeFloat:
		return math.Float32bits(float32(d.floatVal)) == math.Float32bits(float32(o.floatVal))
	case TypeDouble:
		return math.Float64bits(d.floatVal) == math.Float64bits(o.floatVal)
	case TypeString:
		return d.strVal == o.strVal
	case TypeByteArray:
		return slices.Equal(d.byteArr, o.byteArr)
	case TypeShortArray:
		return slices.Equal(d.shortArr, o.shortArr)
	case TypeIntArray:
		return slices.Equal(d.intArr, o.intArr)
	case TypeLongArray:
		return slices.Equal(d.longArr, o.longArr)
	case TypeFloatArray:
		return slices.EqualFunc(d.floatArr, o.floatArr, func(a, b float32) bool {
			return math.Float32bits(a) == math.Float32bits(b)
		})
	case TypeDoubleArray:
		return slices.EqualFunc(d.doubleArr, o.doubleArr, func(a, b float64) bool {
			return math.Float64bits(a) == math.Float64bits(b)
		})
	case TypeStringArray:
		return slices.Equal(d.strArr, o.strArr)
	default:
		for i, t := range d.tagArr {
			if !t.Equal(o.tagArr[i]) {
				return false
			}
		}
		return true
	}
}

func (*Data) node() {}
