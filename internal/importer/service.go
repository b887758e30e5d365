package importer

import (
	"io"

	"github.com/padraigob/resold/internal/importer/resale"
	"github.com/padraigob/resold/internal/item"
)

type Service struct {
	parser Parser
}

func NewService() *Service {
	return &Service{
		parser: resale.NewParser(),
	}
}

// Import parses a CSV upload into item drafts. Construction and
// persistence are the item service's job; this only reads.
func (s *Service) Import(r io.Reader) ([]item.CreateParams, error) {
	return s.parser.Parse(r)
}
