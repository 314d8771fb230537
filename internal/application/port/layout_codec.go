package port

import (
	"io"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// LayoutCodec reads and writes layout documents in one on-disk format.
type LayoutCodec interface {
	// Name is the format name, e.g. "json".
	Name() string
	Decode(r io.Reader) (*entity.LayoutDocument, error)
	Encode(w io.Writer, doc *entity.LayoutDocument) error
}

// LayoutSnapshotter reports the document for a live layout.
type LayoutSnapshotter interface {
	Snapshot() *entity.LayoutDocument
}
