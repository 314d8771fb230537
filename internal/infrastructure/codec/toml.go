package codec

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// TOML writes nodes as nested arrays of tables. The "$type" key is quoted.
type TOML struct{}

func (TOML) Name() string { return "toml" }

func (TOML) Decode(r io.Reader) (*entity.LayoutDocument, error) {
	var doc entity.LayoutDocument
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode toml layout: %w", err)
	}
	return &doc, nil
}

func (TOML) Encode(w io.Writer, doc *entity.LayoutDocument) error {
	enc := toml.NewEncoder(w)
	enc.Indent = "  "
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode toml layout: %w", err)
	}
	return nil
}
