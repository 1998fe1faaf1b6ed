package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads the schema at path. See Decode.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse is Decode over data.
func Parse(data []byte) (*File, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one YAML document from r and fills in defaults. Keys the
// schema does not know are rejected, so a misspelt "optinal" is not silently
// ignored. An empty document is an empty File.
func Decode(r io.Reader) (*File, error) {
	var f File

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills the version, the mode and engine of every parser, and
// names the unnamed variants of sums.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Parsers {
		p := &f.Parsers[i]

		if p.Mode == "" {
			p.Mode = ModeSingle.Name()
		}

		if p.Engine == "" {
			p.Engine = "re2"
		}

		if p.Mode == ModeSum.Name() {
			nameVariants(p.Patterns)
		}
	}
}

func nameVariants(patterns []PatternDef) {
	taken := map[string]struct{}{}
	for _, pd := range patterns {
		if pd.Variant != "" {
			taken[pd.Variant] = struct{}{}
		}
	}

	st := newStem("variant", taken)
	for i := range patterns {
		if patterns[i].Variant == "" {
			patterns[i].Variant = st.next()
		}
	}
}

// Marshal serializes f to YAML. Loading the output again yields f, so
// Marshal after Parse prints a schema with every default spelled out.
func Marshal(f *File) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return buf.Bytes(), nil
}
