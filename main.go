package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/fysac/xorrand/registry"
	"github.com/fysac/xorrand/rngcore"
	"github.com/fysac/xorrand/scramble"
	"github.com/fysac/xorrand/seed"
	"github.com/fysac/xorrand/snapshot"
	"github.com/fysac/xorrand/stats"
)

func main() {
	l := log.New(os.Stderr, "", 0)

	list := flag.Bool("list", false, "list available generators")
	genName := flag.String("gen", "xorshift32", "generator to use (see -list)")
	seedHex := flag.String("seed", "", "seed as hex bytes, little-endian, as wide as the generator state")
	seedInt := flag.Uint64("seed-int", 0, "seed as an integer, repeated to fill the generator state")
	phrase := flag.String("phrase", "", "derive the seed from a phrase")
	loadFile := flag.String("load", "", "restore the generator from a snapshot file (file or file:label)")
	count := flag.Int("n", 0, "number of values to print")
	width := flag.String("width", "native", "width of printed values: native, 32 or 64")
	numBytes := flag.Int("bytes", 0, "number of random bytes to write (requires: -out)")
	statsLen := flag.Int("stats", 0, "print a quality report over this many bytes")
	saveFile := flag.String("save", "", "save the generator state to a snapshot file when done")
	label := flag.String("label", "default", "snapshot label used by -save")
	scrambleFile := flag.String("scramble", "", "file to scramble (requires: -out)")
	unscrambleFile := flag.String("unscramble", "", "file to unscramble (requires: -out)")
	ignoreChecksum := flag.Bool("ignore-checksum", false, "unscramble without verifying checksum")
	outputFile := flag.String("out", "", "output file for -bytes, -scramble or -unscramble")
	flag.Parse()

	if *list {
		printKinds()
		return
	}

	if *unscrambleFile != "" {
		if *outputFile == "" {
			l.Println("-unscramble needs an output file")
			flag.Usage()
			os.Exit(1)
		}
		b, err := os.ReadFile(*unscrambleFile)
		if err != nil {
			l.Fatal(err)
		}
		header, data, err := scramble.Decrypt(b, *ignoreChecksum)
		if err != nil {
			l.Println("unscramble error:", err)
			if errors.Is(err, scramble.ErrInvalidChecksum) {
				l.Println("Try again with -ignore-checksum?")
			}
			os.Exit(1)
		}
		if err := writeFileNoTrunc(*outputFile, data); err != nil {
			l.Fatal(err)
		}
		fmt.Println("Unscrambled to", getAbsPath(*outputFile))
		fmt.Printf("Generator %s, seed %x\n", header.Generator, header.Seed)
		return
	}

	kind, in, seedBytes, err := buildInstance(*genName, *seedHex, *seedInt, *phrase, *loadFile)
	if err != nil {
		l.Fatal(err)
	}

	if *scrambleFile != "" {
		if *outputFile == "" {
			l.Println("-scramble needs an output file")
			flag.Usage()
			os.Exit(1)
		}
		data, err := os.ReadFile(*scrambleFile)
		if err != nil {
			l.Fatal(err)
		}
		if seedBytes == nil {
			// Restored or default generators scramble from their current state.
			if seedBytes, err = in.MarshalBinary(); err != nil {
				l.Fatal(err)
			}
		}
		out, err := scramble.Encrypt(data, kind, seedBytes)
		if err != nil {
			l.Fatalf("%v: %v\n", *scrambleFile, err)
		}
		if err := writeFileNoTrunc(*outputFile, out); err != nil {
			l.Fatal(err)
		}
		fmt.Println("Wrote scrambled file to", getAbsPath(*outputFile))
		return
	}

	if *count > 0 {
		if err := printValues(in, *count, *width); err != nil {
			l.Fatal(err)
		}
	}

	if *numBytes > 0 {
		if *outputFile == "" {
			l.Println("-bytes needs an output file")
			flag.Usage()
			os.Exit(1)
		}
		b := make([]byte, *numBytes)
		in.FillBytes(b)
		if err := writeFileNoTrunc(*outputFile, b); err != nil {
			l.Fatal(err)
		}
		fmt.Println("Wrote", *numBytes, "bytes to", getAbsPath(*outputFile))
	}

	if *statsLen > 0 {
		sample, err := stats.Sample(in, *statsLen)
		if err != nil {
			l.Fatal(err)
		}
		report, err := stats.Analyze(sample)
		if err != nil {
			l.Fatal(err)
		}
		report.Generator = kind.Name
		b, err := report.JSON()
		if err != nil {
			l.Fatal(err)
		}
		os.Stdout.Write(b)
	}

	if *saveFile != "" {
		if err := saveSnapshot(*saveFile, *label, in); err != nil {
			l.Fatal(err)
		}
		l.Printf("Saved %s state as %q in %s\n", kind.Name, *label, getAbsPath(*saveFile))
	}

	if *count == 0 && *numBytes == 0 && *statsLen == 0 && *saveFile == "" {
		flag.Usage()
		os.Exit(1)
	}
}

// buildInstance picks the generator and seeds it from at most one of the seed
// flags. The returned seed bytes are nil when no seed flag was given.
func buildInstance(name, seedHex string, seedInt uint64, phrase, load string) (*registry.Kind, *registry.Instance, []byte, error) {
	if load != "" {
		in, err := loadSnapshot(load)
		if err != nil {
			return nil, nil, nil, err
		}
		return in.Kind, in, nil, nil
	}

	kind, err := registry.Lookup(name)
	if err != nil {
		return nil, nil, nil, err
	}

	var b []byte
	switch {
	case seedHex != "":
		if b, err = hex.DecodeString(seedHex); err != nil {
			return nil, nil, nil, fmt.Errorf("-seed: %w", err)
		}
	case seedInt != 0:
		b = rngcore.SeedFromUint64(seedInt, kind.StateSize)
	case phrase != "":
		in, err := kind.FromPhrase(phrase)
		if err != nil {
			return nil, nil, nil, err
		}
		b, err = in.MarshalBinary()
		return kind, in, b, err
	default:
		return kind, kind.Default(), nil, nil
	}

	in, err := kind.New(b)
	if err != nil {
		return nil, nil, nil, err
	}
	return kind, in, b, nil
}

func printKinds() {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATE BYTES\tOUTPUT BITS\tZERO SEED")
	for _, k := range registry.Kinds() {
		zero := "rejected"
		if k.ZeroSeedAllowed {
			zero = "allowed"
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", k.Name, k.StateSize, k.OutputBits, zero)
	}
	w.Flush()
}

func printValues(in *registry.Instance, n int, width string) error {
	bits := in.Kind.OutputBits
	switch width {
	case "native":
	case "32":
		bits = 32
	case "64":
		bits = 64
	default:
		return fmt.Errorf("-width must be native, 32 or 64, not %q", width)
	}

	var buf [8]byte
	for i := 0; i < n; i++ {
		var v uint64
		switch bits {
		case 64:
			v = in.Uint64()
		case 32:
			v = uint64(in.Uint32())
		default:
			in.FillBytes(buf[:bits/8])
			v = seed.Compose[uint64](buf[:bits/8]...)
		}
		fmt.Println(v)
	}
	return nil
}

func loadSnapshot(arg string) (*registry.Instance, error) {
	path, label := arg, ""
	if i := strings.LastIndex(arg, ":"); i > 0 {
		path, label = arg[:i], arg[i+1:]
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := snapshot.Decode(b, snapshot.FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	if label == "" {
		labels := f.Labels()
		if len(labels) != 1 {
			return nil, fmt.Errorf("%v: has %d entries, pick one with file:label", path, len(labels))
		}
		label = labels[0]
	}
	e, ok := f.Get(label)
	if !ok {
		return nil, fmt.Errorf("%v: no entry labelled %q", path, label)
	}
	return e.Restore()
}

// saveSnapshot adds or replaces label in the snapshot file at path.
func saveSnapshot(path, label string, in *registry.Instance) error {
	format := snapshot.FormatFromPath(path)
	f := snapshot.NewFile()
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if f, err = snapshot.Decode(b, format); err != nil {
			return fmt.Errorf("%v: %w", path, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	e, err := snapshot.Take(in)
	if err != nil {
		return err
	}
	f.Set(label, e)
	out, err := f.Encode(format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0600)
}

func getAbsPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		panic(err)
	}
	return abs
}

func writeFileNoTrunc(name string, b []byte) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	if _, err = f.Write(b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
