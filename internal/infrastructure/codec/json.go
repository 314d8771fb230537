package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// JSON is the default layout format: camelCase keys, two-space indent.
type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Decode(r io.Reader) (*entity.LayoutDocument, error) {
	var doc entity.LayoutDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode json layout: %w", err)
	}
	return &doc, nil
}

func (JSON) Encode(w io.Writer, doc *entity.LayoutDocument) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode json layout: %w", err)
	}
	return nil
}
