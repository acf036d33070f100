package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/reoring/bintag"
	"github.com/reoring/bintag/dump"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "write":
		writeCmd(os.Args[2:])
	case "dump":
		dumpCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "bintag CLI\n\nUsage:\n  bintag write <file>\n  bintag dump [-format text|json|yaml] <file>\n\nNotes:\n  - write encodes a small sample document, dump decodes and prints one.")
}

func writeCmd(args []string) {
	fs := flag.NewFlagSet("write", flag.ExitOnError)
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	f, err := os.Create(fs.Arg(0))
	if err != nil {
		fatalf("create: %v", err)
	}
	defer f.Close()
	if err := bintag.Encode(f, sampleDoc()); err != nil {
		fatalf("encode: %v", err)
	}
	if err := f.Close(); err != nil {
		fatalf("close: %v", err)
	}
}

func dumpCmd(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	var format string
	fs.StringVar(&format, "format", "text", "output format: text, json or yaml")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fatalf("open: %v", err)
	}
	defer f.Close()
	tag, err := bintag.DecodeTag(f)
	if err != nil {
		fatalf("decode: %v", err)
	}
	switch format {
	case "text":
		fmt.Println(tag)
	case "json":
		out, err := dump.JSON(tag)
		if err != nil {
			fatalf("render json: %v", err)
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := dump.YAML(tag)
		if err != nil {
			fatalf("render yaml: %v", err)
		}
		os.Stdout.Write(out)
	default:
		fatalf("unknown format %q", format)
	}
}

// sampleDoc builds the demo document: a couple of scalars, a nested tag, a
// tag array and a float-array position.
func sampleDoc() *bintag.Tag {
	return bintag.TagOf(
		bintag.Entry{Name: "name", Node: bintag.OfString("bin-tag")},
		bintag.Entry{Name: "version", Node: bintag.OfString("1.0.0")},
		bintag.Entry{Name: "number", Node: bintag.OfInt(42)},
		bintag.Entry{Name: "subtag", Node: bintag.TagOf(
			bintag.Entry{Name: "name", Node: bintag.OfString("bin-tag")},
			bintag.Entry{Name: "version", Node: bintag.OfString("2.0.0")},
			bintag.Entry{Name: "number", Node: bintag.OfInt(43)},
			bintag.Entry{Name: "subtag-array", Node: bintag.OfTagArray(
				bintag.TagOf(
					bintag.Entry{Name: "name", Node: bintag.OfString("bin-tag")},
					bintag.Entry{Name: "version", Node: bintag.OfString("3.0.0")},
					bintag.Entry{Name: "number", Node: bintag.OfInt(44)},
					bintag.Entry{Name: "subtag", Node: bintag.NewTag(0)},
				),
				bintag.TagOf(
					bintag.Entry{Name: "name", Node: bintag.OfString("bin-tag")},
					bintag.Entry{Name: "version", Node: bintag.OfString("4.0.0")},
					bintag.Entry{Name: "number", Node: bintag.OfInt(45)},
					bintag.Entry{Name: "position", Node: bintag.OfFloatArray(1, 0, 0, 1)},
				),
			)},
		)},
	)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
