package contract

import (
	"context"

	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
)

type ISparePartRepository interface {
	GetSpareParts(ctx context.Context) ([]entity.SparePart, error)
	// GetSparePartByID retrieves a spare part by ObjectId hex. Returns
	// (nil, nil) when no part matches.
	GetSparePartByID(ctx context.Context, id string) (*entity.SparePart, error)
	CreateSparePart(ctx context.Context, part *entity.SparePart) (string, error)
	UpdateSparePartByID(ctx context.Context, id string, updates map[string]any) (bool, error)
	DeleteSparePartByID(ctx context.Context, id string) (bool, error)
	// CountExistingByIDs returns how many of the given ObjectId hex values
	// exist in the catalog. Used by order cross-reference validation; the
	// result is compared against the number of distinct ids requested.
	CountExistingByIDs(ctx context.Context, ids []string) (int64, error)
}
