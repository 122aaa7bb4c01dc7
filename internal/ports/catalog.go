package ports

import (
	"context"

	"github.com/b2jena/pokemon-dance/internal/domain"
)

// Catalog reads creature records from the remote data source.
// Failures wrap domain.ErrNetwork or domain.ErrDecode.
type Catalog interface {
	FetchPokemon(ctx context.Context, id int) (domain.Pokemon, error)
	// FetchSpecies follows the species link embedded in a Pokemon record.
	FetchSpecies(ctx context.Context, url string) (domain.Species, error)
}
