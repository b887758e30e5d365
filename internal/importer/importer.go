package importer

import (
	"io"

	"github.com/padraigob/resold/internal/item"
)

// Parser turns a CSV stream into item drafts ready for batch creation.
type Parser interface {
	Parse(r io.Reader) ([]item.CreateParams, error)
}
