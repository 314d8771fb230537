package usecase

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// NewUUIDGenerator returns a generator of dash-free random UUIDs.
func NewUUIDGenerator() IDGenerator {
	return func() string {
		return strings.ReplaceAll(uuid.NewString(), "-", "")
	}
}

func (g IDGenerator) orDefault() IDGenerator {
	if g == nil {
		return NewUUIDGenerator()
	}
	return g
}
