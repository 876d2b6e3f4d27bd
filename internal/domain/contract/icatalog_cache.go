package contract

import (
	"context"

	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
)

// ICatalogCache is an optional read-through cache for the spare-part catalog
// listing. A nil implementation is valid; handlers must work without it.
type ICatalogCache interface {
	GetParts(ctx context.Context) ([]entity.SparePart, bool, error)
	SetParts(ctx context.Context, parts []entity.SparePart) error
	Invalidate(ctx context.Context) error
}
