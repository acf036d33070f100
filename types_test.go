package bintag_test

import (
	"testing"

	"github.com/reoring/bintag"
)

func TestTypeIsArray(t *testing.T) {
	scalars := []bintag.Type{
		bintag.TypeByte, bintag.TypeShort, bintag.TypeInt, bintag.TypeLong,
		bintag.TypeFloat, bintag.TypeDouble, bintag.TypeString, bintag.TypeTag,
	}
	for _, typ := range scalars {
		if typ.IsArray() {
			t.Fatalf("%s reported as array", typ)
		}
	}
	arrays := []bintag.Type{
		bintag.TypeByteArray, bintag.TypeShortArray, bintag.TypeIntArray,
		bintag.TypeLongArray, bintag.TypeFloatArray, bintag.TypeDoubleArray,
		bintag.TypeStringArray, bintag.TypeTagArray,
	}
	for _, typ := range arrays {
		if !typ.IsArray() {
			t.Fatalf("%s not reported as array", typ)
		}
	}
}

func TestTypeByID(t *testing.T) {
	typ, err := bintag.TypeByID(15)
	if err != nil {
		t.Fatalf("TypeByID(15): %v", err)
	}
	if typ != bintag.TypeTagArray {
		t.Fatalf("TypeByID(15) = %s, want %s", typ, bintag.TypeTagArray)
	}
	for _, id := range []byte{16, 17, 128, 255} {
		_, err := bintag.TypeByID(id)
		if !bintag.HasCode(err, bintag.CodeUnknownType) {
			t.Fatalf("TypeByID(%d): want %s, got %v", id, bintag.CodeUnknownType, err)
		}
	}
}

func TestTypeString(t *testing.T) {
	cases := map[bintag.Type]string{
		bintag.TypeByte:        "byte",
		bintag.TypeString:      "string",
		bintag.TypeTag:         "tag",
		bintag.TypeFloatArray:  "float_array",
		bintag.TypeTagArray:    "tag_array",
		bintag.TypeDoubleArray: "double_array",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Fatalf("Type(%d).String() = %q, want %q", uint8(typ), got, want)
		}
	}
	if got := bintag.Type(42).String(); got != "unknown" {
		t.Fatalf("Type(42).String() = %q, want unknown", got)
	}
}
