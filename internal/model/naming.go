package model

import (
	"fmt"
	"strings"
)

// DefaultVariantPrefix is prepended to the index of every written variant.
const DefaultVariantPrefix = "crushed_"

// Naming derives the file name of a variant from its global index.
type Naming struct {
	Prefix    string
	Extension string
}

// NewNaming builds a Naming. An empty prefix selects DefaultVariantPrefix and a
// leading dot on ext is dropped.
func NewNaming(prefix, ext string) Naming {
	if prefix == "" {
		prefix = DefaultVariantPrefix
	}

	return Naming{Prefix: prefix, Extension: strings.TrimPrefix(ext, ".")}
}

// FileName returns <Prefix><index>.<Extension>, or <Prefix><index> when the
// extension is empty.
func (n Naming) FileName(index int) string {
	if n.Extension == "" {
		return fmt.Sprintf("%s%d", n.Prefix, index)
	}

	return fmt.Sprintf("%s%d.%s", n.Prefix, index, n.Extension)
}
