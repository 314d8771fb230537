package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// YAML reads and writes layouts with the same keys as JSON.
type YAML struct{}

func (YAML) Name() string { return "yaml" }

func (YAML) Decode(r io.Reader) (*entity.LayoutDocument, error) {
	var doc entity.LayoutDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode yaml layout: %w", err)
	}
	return &doc, nil
}

func (YAML) Encode(w io.Writer, doc *entity.LayoutDocument) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml layout: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml layout: %w", err)
	}
	return nil
}
