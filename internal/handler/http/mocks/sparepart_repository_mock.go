package mocks

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gearshift-labs/partsdepot/internal/domain/contract"
	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
)

// MockSparePartRepository is an in-memory implementation of ISparePartRepository.
type MockSparePartRepository struct {
	mu    sync.Mutex
	parts map[string]entity.SparePart

	ShouldFail bool
}

var _ contract.ISparePartRepository = (*MockSparePartRepository)(nil)

func NewMockSparePartRepository() *MockSparePartRepository {
	return &MockSparePartRepository{parts: map[string]entity.SparePart{}}
}

func (m *MockSparePartRepository) Seed(part entity.SparePart) entity.SparePart {
	m.mu.Lock()
	defer m.mu.Unlock()
	if part.ID.IsZero() {
		part.ID = primitive.NewObjectID()
	}
	m.parts[part.ID.Hex()] = part
	return part
}

func (m *MockSparePartRepository) GetSpareParts(ctx context.Context) ([]entity.SparePart, error) {
	if m.ShouldFail {
		return nil, errors.New("spare part lookup failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.SparePart, 0, len(m.parts))
	for _, p := range m.parts {
		out = append(out, p)
	}
	return out, nil
}

func (m *MockSparePartRepository) GetSparePartByID(ctx context.Context, id string) (*entity.SparePart, error) {
	if m.ShouldFail {
		return nil, errors.New("spare part lookup failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.parts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *MockSparePartRepository) CreateSparePart(ctx context.Context, part *entity.SparePart) (string, error) {
	if m.ShouldFail {
		return "", errors.New("spare part creation failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if part.ID.IsZero() {
		part.ID = primitive.NewObjectID()
	}
	m.parts[part.ID.Hex()] = *part
	return part.ID.Hex(), nil
}

func (m *MockSparePartRepository) UpdateSparePartByID(ctx context.Context, id string, updates map[string]any) (bool, error) {
	if m.ShouldFail {
		return false, errors.New("spare part update failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.parts[id]
	if !ok {
		return false, nil
	}
	if v, ok := updates["name"].(string); ok {
		p.Name = v
	}
	if v, ok := updates["description"].(string); ok {
		p.Description = v
	}
	if v, ok := updates["price"].(float64); ok {
		p.Price = v
	}
	if v, ok := updates["stock"].(int); ok {
		p.Stock = v
	}
	if v, ok := updates["compatibleCars"].([]string); ok {
		p.CompatibleCars = v
	}
	if v, ok := updates["category"].(string); ok {
		p.Category = v
	}
	m.parts[id] = p
	return true, nil
}

func (m *MockSparePartRepository) DeleteSparePartByID(ctx context.Context, id string) (bool, error) {
	if m.ShouldFail {
		return false, errors.New("spare part delete failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.parts[id]; !ok {
		return false, nil
	}
	delete(m.parts, id)
	return true, nil
}

func (m *MockSparePartRepository) CountExistingByIDs(ctx context.Context, ids []string) (int64, error) {
	if m.ShouldFail {
		return 0, errors.New("spare part count failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, id := range ids {
		if _, ok := m.parts[id]; ok {
			count++
		}
	}
	return count, nil
}
