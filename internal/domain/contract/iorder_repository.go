package contract

import (
	"context"

	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
)

type IOrderRepository interface {
	GetOrders(ctx context.Context) ([]entity.Order, error)
	// GetOrderByID retrieves an order by ObjectId hex. Returns (nil, nil)
	// when no order matches.
	GetOrderByID(ctx context.Context, id string) (*entity.Order, error)
	CreateOrder(ctx context.Context, order *entity.Order) (string, error)
	UpdateOrderByID(ctx context.Context, id string, updates map[string]any) (bool, error)
	DeleteOrderByID(ctx context.Context, id string) (bool, error)
}
