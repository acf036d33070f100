package bintag

// Type identifies the exact kind of a Node. The numeric value of each
// constant doubles as the one-byte wire discriminant, so the declaration
// order below is frozen: new kinds may only ever be appended.
type Type uint8

const (
	TypeByte Type = iota
	TypeShort
	TypeInt
	TypeLong
	TypeFloat
	TypeDouble
	TypeString
	TypeTag
	TypeByteArray
	TypeShortArray
	TypeIntArray
	TypeLongArray
	TypeFloatArray
	TypeDoubleArray
	TypeStringArray
	TypeTagArray

	typeCount = 16
)

// IsArray reports whether t is one of the eight array kinds.
func (t Type) IsArray() bool {
	return t >= TypeByteArray && t <= TypeTagArray
}

// String returns the canonical display name of the type.
func (t Type) String() string {
	switch t {
	case TypeByte:
		return "byte"
	case TypeShort:
		return "short"
	case TypeInt:
		return "int"
	case TypeLong:
		return "long"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeTag:
		return "tag"
	case TypeByteArray:
		return "byte_array"
	case TypeShortArray:
		return "short_array"
	case TypeIntArray:
		return "int_array"
	case TypeLongArray:
		return "long_array"
	case TypeFloatArray:
		return "float_array"
	case TypeDoubleArray:
		return "double_array"
	case TypeStringArray:
		return "string_array"
	case TypeTagArray:
		return "tag_array"
	default:
		return "unknown"
	}
}

// TypeByID maps a wire discriminant byte back to its Type. Bytes outside the
// valid range fail with CodeUnknownType; untrusted streams hit this check
// before anything else is decoded.
func TypeByID(id byte) (Type, error) {
	if id >= typeCount {
		return 0, issuef("/", CodeUnknownType, "unknown type id %d", id)
	}
	return Type(id), nil
}
