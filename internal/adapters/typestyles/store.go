package typestyles

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/b2jena/pokemon-dance/internal/domain"
)

//go:embed data/types.json
var dataFS embed.FS

// EmbeddedStore serves the category badge table from embedded JSON.
type EmbeddedStore struct {
	once   sync.Once
	styles domain.TypeStyleMap
	err    error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) init() {
	raw, err := dataFS.ReadFile("data/types.json")
	if err != nil {
		s.err = fmt.Errorf("read embedded type table: %w", err)
		return
	}
	var styles domain.TypeStyleMap
	if err := json.Unmarshal(raw, &styles); err != nil {
		s.err = fmt.Errorf("parse embedded type table: %w", err)
		return
	}
	s.styles = styles
}

// Load parses the table and reports any error. Style works without calling it first.
func (s *EmbeddedStore) Load() error {
	s.once.Do(s.init)
	return s.err
}

// Style implements domain.TypeStyler. Unknown names, and a table that failed to load,
// yield domain.DefaultTypeStyle.
func (s *EmbeddedStore) Style(typeName string) domain.TypeStyle {
	if err := s.Load(); err != nil {
		return domain.DefaultTypeStyle
	}
	return s.styles.Style(typeName)
}

// Len is the number of known categories.
func (s *EmbeddedStore) Len() int {
	if err := s.Load(); err != nil {
		return 0
	}
	return len(s.styles)
}
