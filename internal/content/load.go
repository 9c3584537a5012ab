package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var docValidator = validator.New()

// DefaultYAML returns the built-in content document.
func DefaultYAML() []byte {
	return bytes.Clone(defaultYAML)
}

// Default builds the catalog from the built-in content.
// The embedded document is part of the binary, so a failure here is a
// programming error.
func Default() *Catalog {
	cat, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("content: built-in document is invalid: %v", err))
	}
	return cat
}

// Parse decodes and validates a YAML content document.
func Parse(data []byte) (*Catalog, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode content document: %w", err)
	}
	if err := Validate(doc); err != nil {
		return nil, err
	}
	return NewCatalog(doc), nil
}

// Load reads a content document from fs. An empty path yields the built-in
// content.
func Load(fs afero.Fs, path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return cat, nil
}

// Validate checks the structural rules of a document: required titles,
// unique ids per list and in-page footer anchors.
func Validate(doc Document) error {
	err := docValidator.Struct(doc)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate content document: %w", err)
	}
	problems := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Errorf("%s: failed %q rule", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid content document: %w", errors.Join(problems...))
}

// Marshal renders the catalog as YAML.
func Marshal(c *Catalog) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c.Document()); err != nil {
		return nil, fmt.Errorf("failed to encode content document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
