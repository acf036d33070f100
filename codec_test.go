package bintag_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/reoring/bintag"
)

// allKindsDoc exercises every leaf kind, zero-length arrays and nesting.
func allKindsDoc() *bintag.Tag {
	return bintag.TagOf(
		bintag.Entry{Name: "byte", Node: bintag.OfByte(42)},
		bintag.Entry{Name: "short", Node: bintag.OfShort(43)},
		bintag.Entry{Name: "int", Node: bintag.OfInt(44)},
		bintag.Entry{Name: "long", Node: bintag.OfLong(45)},
		bintag.Entry{Name: "float", Node: bintag.OfFloat(46)},
		bintag.Entry{Name: "double", Node: bintag.OfDouble(47)},
		bintag.Entry{Name: "string", Node: bintag.OfString("48")},
		bintag.Entry{Name: "empty", Node: bintag.OfIntArray()},
		bintag.Entry{Name: "emptyTags", Node: bintag.OfTagArray()},
		bintag.Entry{Name: "tag", Node: bintag.TagOf(
			bintag.Entry{Name: "byteArray", Node: bintag.OfByteArray(49, 50)},
			bintag.Entry{Name: "shortArray", Node: bintag.OfShortArray(51, 52)},
			bintag.Entry{Name: "intArray", Node: bintag.OfIntArray(53, 54)},
			bintag.Entry{Name: "longArray", Node: bintag.OfLongArray(55, 56)},
			bintag.Entry{Name: "floatArray", Node: bintag.OfFloatArray(57, 58)},
			bintag.Entry{Name: "doubleArray", Node: bintag.OfDoubleArray(59, 60)},
			bintag.Entry{Name: "stringArray", Node: bintag.OfStringArray("61", "62")},
			bintag.Entry{Name: "tagArray", Node: bintag.OfTagArray(
				bintag.TagOf(bintag.Entry{Name: "tag1", Node: bintag.OfString("63")}),
				bintag.TagOf(bintag.Entry{Name: "tag2", Node: bintag.OfString("64")}),
			)},
		)},
	)
}

func TestRoundTripAllKinds(t *testing.T) {
	doc := allKindsDoc()
	var buf bytes.Buffer
	if err := bintag.Encode(&buf, doc); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := bintag.DecodeTag(&buf)
	if err != nil {
		t.Fatalf("DecodeTag: %v", err)
	}
	if !got.Equal(doc) {
		t.Fatalf("round trip mismatch:\n got %s\nwant %s", got, doc)
	}
	if buf.Len() != 0 {
		t.Fatalf("%d bytes left after decode", buf.Len())
	}
}

func TestRoundTripScalarRoot(t *testing.T) {
	var buf bytes.Buffer
	if err := bintag.Encode(&buf, bintag.OfString("solo")); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	n, err := bintag.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !n.Equal(bintag.OfString("solo")) {
		t.Fatalf("round trip mismatch: %s", n)
	}
}

func TestEndToEndExample(t *testing.T) {
	doc := bintag.TagOf(
		bintag.Entry{Name: "name", Node: bintag.OfString("bin-tag")},
		bintag.Entry{Name: "version", Node: bintag.OfString("1.0.0")},
		bintag.Entry{Name: "number", Node: bintag.OfInt(42)},
		bintag.Entry{Name: "subtag", Node: bintag.TagOf(
			bintag.Entry{Name: "position", Node: bintag.OfFloatArray(1, 0, 0, 1)},
		)},
	)
	var buf bytes.Buffer
	if err := bintag.Encode(&buf, doc); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := bintag.DecodeTag(&buf)
	if err != nil {
		t.Fatalf("DecodeTag: %v", err)
	}
	if s, err := got.GetString("name"); err != nil || s != "bin-tag" {
		t.Fatalf("name = %q, %v", s, err)
	}
	if s, err := got.GetString("version"); err != nil || s != "1.0.0" {
		t.Fatalf("version = %q, %v", s, err)
	}
	if v, err := got.GetInt("number"); err != nil || v != 42 {
		t.Fatalf("number = %d, %v", v, err)
	}
	sub, err := got.GetTag("subtag")
	if err != nil {
		t.Fatalf("subtag: %v", err)
	}
	pos, err := sub.GetFloatArray("position")
	if err != nil {
		t.Fatalf("position: %v", err)
	}
	want := []float32{1, 0, 0, 1}
	if len(pos) != 4 {
		t.Fatalf("position length = %d", len(pos))
	}
	for i := range want {
		if pos[i] != want[i] {
			t.Fatalf("position = %v, want %v", pos, want)
		}
	}
	if !got.Equal(doc) {
		t.Fatalf("decoded document differs from original")
	}
}

func TestGoldenWireBytes(t *testing.T) {
	doc := bintag.TagOf(
		bintag.Entry{Name: "n", Node: bintag.OfInt(42)},
		bintag.Entry{Name: "pos", Node: bintag.OfFloatArray(1, -2.5)},
	)
	var buf bytes.Buffer
	if err := bintag.Encode(&buf, doc); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{
		0x07,                   // discriminant: tag
		0x00, 0x00, 0x00, 0x02, // 2 entries
		0x00, 0x01, 'n', // name "n"
		0x02,                   // discriminant: int
		0x00, 0x00, 0x00, 0x2a, // 42
		0x00, 0x03, 'p', 'o', 's', // name "pos"
		0x0c,                   // discriminant: float array
		0x00, 0x00, 0x00, 0x02, // 2 elements
		0x3f, 0x80, 0x00, 0x00, // 1.0
		0xc0, 0x20, 0x00, 0x00, // -2.5
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("wire bytes\n got % x\nwant % x", buf.Bytes(), want)
	}
}

func TestDecodeRejectsUnknownDiscriminant(t *testing.T) {
	for _, lead := range []byte{16, 17, 255} {
		_, err := bintag.Decode(bytes.NewReader([]byte{lead}))
		if !bintag.HasCode(err, bintag.CodeUnknownType) {
			t.Fatalf("lead byte %d: want %s, got %v", lead, bintag.CodeUnknownType, err)
		}
	}
}

func TestDecodeReportsNestedPath(t *testing.T) {
	// Root tag with one entry "sub" whose discriminant byte is invalid.
	stream := []byte{
		0x07,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x03, 's', 'u', 'b',
		0x10, // invalid discriminant 16
	}
	_, err := bintag.Decode(bytes.NewReader(stream))
	iss, ok := bintag.AsIssues(err)
	if !ok || !bintag.HasCode(err, bintag.CodeUnknownType) {
		t.Fatalf("want %s, got %v", bintag.CodeUnknownType, err)
	}
	if iss[0].Path != "/sub" {
		t.Fatalf("Path = %q, want /sub", iss[0].Path)
	}
}

func TestDecodeNegativeCount(t *testing.T) {
	stream := []byte{
		0x07,
		0xff, 0xff, 0xff, 0xff, // entry count -1
	}
	_, err := bintag.Decode(bytes.NewReader(stream))
	if !bintag.HasCode(err, bintag.CodeMalformed) {
		t.Fatalf("want %s, got %v", bintag.CodeMalformed, err)
	}
}

func TestDecodeTagRejectsScalarRoot(t *testing.T) {
	var buf bytes.Buffer
	if err := bintag.Encode(&buf, bintag.OfInt(1)); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	_, err := bintag.DecodeTag(&buf)
	if !bintag.HasCode(err, bintag.CodeTypeMismatch) {
		t.Fatalf("want %s, got %v", bintag.CodeTypeMismatch, err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	var buf bytes.Buffer
	if err := bintag.Encode(&buf, allKindsDoc()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	full := buf.Bytes()
	// Any proper prefix must fail deterministically, never hang or succeed.
	for _, cut := range []int{1, 5, 9, len(full) / 2, len(full) - 1} {
		_, err := bintag.Decode(bytes.NewReader(full[:cut]))
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Fatalf("prefix of %d bytes: want %v, got %v", cut, io.ErrUnexpectedEOF, err)
		}
	}
}

func TestDecodeEmptySource(t *testing.T) {
	_, err := bintag.Decode(bytes.NewReader(nil))
	if !errors.Is(err, io.EOF) {
		t.Fatalf("want io.EOF, got %v", err)
	}
}

type failWriter struct{ err error }

func (w failWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestEncodePropagatesIOError(t *testing.T) {
	sentinel := errors.New("sink broke")
	err := bintag.Encode(failWriter{err: sentinel}, allKindsDoc())
	if !errors.Is(err, sentinel) {
		t.Fatalf("want sentinel error, got %v", err)
	}
	if _, ok := bintag.AsIssues(err); ok {
		t.Fatalf("I/O error was rewrapped as Issues: %v", err)
	}
}

func TestUnicodeStringRoundTrip(t *testing.T) {
	doc := bintag.TagOf(
		bintag.Entry{Name: "héllo", Node: bintag.OfString("世界 🚀 ÿ")},
		bintag.Entry{Name: "arr", Node: bintag.OfStringArray("", "ünïcode", "🎯")},
	)
	var buf bytes.Buffer
	if err := bintag.Encode(&buf, doc); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := bintag.DecodeTag(&buf)
	if err != nil {
		t.Fatalf("DecodeTag: %v", err)
	}
	if !got.Equal(doc) {
		t.Fatalf("unicode round trip mismatch: %s", got)
	}
}

func TestNaNRoundTrip(t *testing.T) {
	nan32 := float32(math.NaN())
	doc := bintag.TagOf(
		bintag.Entry{Name: "f", Node: bintag.OfFloat(nan32)},
		bintag.Entry{Name: "d", Node: bintag.OfDouble(math.NaN())},
		bintag.Entry{Name: "fa", Node: bintag.OfFloatArray(nan32, 1)},
		bintag.Entry{Name: "da", Node: bintag.OfDoubleArray(math.NaN())},
	)
	if !doc.Equal(doc.Copy()) {
		t.Fatalf("document with NaN not equal to its own copy")
	}
	var buf bytes.Buffer
	if err := bintag.Encode(&buf, doc); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := bintag.DecodeTag(&buf)
	if err != nil {
		t.Fatalf("DecodeTag: %v", err)
	}
	if !got.Equal(doc) {
		t.Fatalf("NaN round trip mismatch:\n got %s\nwant %s", got, doc)
	}
	f, err := got.GetFloat("f")
	if err != nil {
		t.Fatalf("GetFloat: %v", err)
	}
	if !math.IsNaN(float64(f)) {
		t.Fatalf("f = %v, want NaN", f)
	}
}

func TestForgedCountFailsCleanly(t *testing.T) {
	// A huge declared element count with no bytes behind it must fail with
	// a truncation error, not exhaust memory.
	stream := []byte{
		0x0a,                   // int array
		0x7f, 0xff, 0xff, 0xff, // claims 2^31-1 elements
		0x00, 0x00, 0x00, 0x01,
	}
	_, err := bintag.Decode(bytes.NewReader(stream))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("want %v, got %v", io.ErrUnexpectedEOF, err)
	}
}
