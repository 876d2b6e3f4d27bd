package mocks

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gearshift-labs/partsdepot/internal/domain/contract"
	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
)

// MockOrderRepository is an in-memory implementation of IOrderRepository.
type MockOrderRepository struct {
	mu     sync.Mutex
	orders map[string]entity.Order

	ShouldFail bool
}

var _ contract.IOrderRepository = (*MockOrderRepository)(nil)

func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{orders: map[string]entity.Order{}}
}

func (m *MockOrderRepository) Seed(order entity.Order) entity.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	m.orders[order.ID.Hex()] = order
	return order
}

func (m *MockOrderRepository) GetOrders(ctx context.Context) ([]entity.Order, error) {
	if m.ShouldFail {
		return nil, errors.New("order lookup failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, nil
}

func (m *MockOrderRepository) GetOrderByID(ctx context.Context, id string) (*entity.Order, error) {
	if m.ShouldFail {
		return nil, errors.New("order lookup failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, order *entity.Order) (string, error) {
	if m.ShouldFail {
		return "", errors.New("order creation failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}
	m.orders[order.ID.Hex()] = *order
	return order.ID.Hex(), nil
}

func (m *MockOrderRepository) UpdateOrderByID(ctx context.Context, id string, updates map[string]any) (bool, error) {
	if m.ShouldFail {
		return false, errors.New("order update failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return false, nil
	}
	if v, ok := updates["items"].([]entity.OrderItem); ok {
		o.Items = v
	}
	if v, ok := updates["status"].(string); ok {
		o.Status = v
	}
	m.orders[id] = o
	return true, nil
}

func (m *MockOrderRepository) DeleteOrderByID(ctx context.Context, id string) (bool, error) {
	if m.ShouldFail {
		return false, errors.New("order delete failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[id]; !ok {
		return false, nil
	}
	delete(m.orders, id)
	return true, nil
}
