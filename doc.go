package bintag

// Package bintag provides:
//
// - A closed data model for named hierarchical binary documents: Data (scalar
//   or homogeneous array leaf) and Tag (named mapping), unified under Node
// - A self-describing binary codec (Encode/Decode/DecodeTag) driven entirely
//   by the one-byte type discriminant carried in the stream
// - A stable error model via Issues (path, code, message)
// - Deep copy and structural equality over whole node trees
//
// Design policy:
// - Keep only public APIs in the root package; diagnostics exporters live
//   under dump/ and the CLI under cmd/bintag.
// - The binary stream is the only wire format; text renderings (String,
//   dump.JSON, dump.YAML) are one-way and diagnostic only.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  t := bintag.TagOf(
//      bintag.Entry{Name: "name", Node: bintag.OfString("bin-tag")},
//      bintag.Entry{Name: "number", Node: bintag.OfInt(42)},
//  )
//  err := bintag.Encode(w, t)
//  t2, err := bintag.DecodeTag(r)
//
