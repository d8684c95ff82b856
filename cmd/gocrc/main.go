// Command gocrc computes a catalogue or custom CRC over one or more files,
// or standard input, optionally decoding a compression codec first.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gocrc/gocrc"
	"github.com/gocrc/gocrc/lz4"
)

var (
	flagName   = flag.String("name", "", "catalogue name, e.g. crc-32-iso-hdlc (default crc-32 if width/poly unset)")
	flagWidth  = flag.Uint("width", 0, "register width in bits, overrides the catalogue entry")
	flagPoly   = flag.Uint64("poly", 0, "generator polynomial, overrides the catalogue entry")
	flagInit   = flag.Uint64("init", 0, "initial register value, overrides the catalogue entry")
	flagRefIn  = flag.Bool("refin", false, "reflect input bytes, overrides the catalogue entry")
	flagRefOut = flag.Bool("refout", false, "reflect output register, overrides the catalogue entry")
	flagXorOut = flag.Uint64("xorout", 0, "output XOR mask, overrides the catalogue entry")
	flagMethod = flag.String("method", "wordwise", "update kernel: bitwise, bytewise, or wordwise")
	flagCodec  = flag.String("codec", "", "decompress input first: snappy or lz4")
)

func methodFor(name string) (gocrc.Method, error) {
	switch name {
	case "bitwise":
		return gocrc.MethodBitwise, nil
	case "bytewise":
		return gocrc.MethodBytewise, nil
	case "wordwise", "":
		return gocrc.MethodWordwise, nil
	default:
		return 0, fmt.Errorf("unknown -method %q", name)
	}
}

func codecFor(name string) (gocrc.Compressor, error) {
	switch name {
	case "":
		return nil, nil
	case "snappy":
		return gocrc.SnappyCompressor{}, nil
	case "lz4":
		return lz4.LZ4Compressor{}, nil
	default:
		return nil, fmt.Errorf("unknown -codec %q", name)
	}
}

func buildOptions() ([]gocrc.Option, error) {
	var opts []gocrc.Option
	overrides := map[string]gocrc.Option{
		"width":  gocrc.WithWidth(uint8(*flagWidth)),
		"poly":   gocrc.WithPoly(*flagPoly),
		"init":   gocrc.WithInit(*flagInit),
		"refin":  gocrc.WithRefIn(*flagRefIn),
		"refout": gocrc.WithRefOut(*flagRefOut),
		"xorout": gocrc.WithXorOut(*flagXorOut),
	}
	flag.Visit(func(f *flag.Flag) {
		if opt, ok := overrides[f.Name]; ok {
			opts = append(opts, opt)
		}
	})
	if *flagName != "" {
		opts = append(opts, gocrc.WithName(*flagName))
	}
	method, err := methodFor(*flagMethod)
	if err != nil {
		return nil, err
	}
	opts = append(opts, gocrc.WithMethod(method))
	return opts, nil
}

func checksumOne(name string, r io.Reader, opts []gocrc.Option, codec gocrc.Compressor) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if codec != nil {
		data, err = codec.Decode(data)
		if err != nil {
			return fmt.Errorf("decoding %s with %s: %w", name, codec.Name(), err)
		}
	}
	e, err := gocrc.New(opts...)
	if err != nil {
		return fmt.Errorf("configuring engine: %w", err)
	}
	e.Update(data)
	fmt.Printf("%s  %s\n", e.HexDigest(), name)
	return nil
}

func main() {
	flag.Parse()

	opts, err := buildOptions()
	if err != nil {
		log.Fatal(err)
	}
	codec, err := codecFor(*flagCodec)
	if err != nil {
		log.Fatal(err)
	}

	args := flag.Args()
	if len(args) == 0 {
		if err := checksumOne("-", os.Stdin, opts, codec); err != nil {
			log.Fatal(err)
		}
		return
	}

	status := 0
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			log.Print(err)
			status = 1
			continue
		}
		if err := checksumOne(path, f, opts, codec); err != nil {
			log.Print(err)
			status = 1
		}
		f.Close()
	}
	os.Exit(status)
}
