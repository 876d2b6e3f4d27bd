package mocks

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gearshift-labs/partsdepot/internal/domain/contract"
	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
)

// MockCarRepository is an in-memory implementation of ICarRepository.
type MockCarRepository struct {
	mu   sync.Mutex
	cars map[string]entity.Car

	ShouldFail bool
}

var _ contract.ICarRepository = (*MockCarRepository)(nil)

func NewMockCarRepository() *MockCarRepository {
	return &MockCarRepository{cars: map[string]entity.Car{}}
}

func (m *MockCarRepository) Seed(car entity.Car) entity.Car {
	m.mu.Lock()
	defer m.mu.Unlock()
	if car.ID.IsZero() {
		car.ID = primitive.NewObjectID()
	}
	m.cars[car.ID.Hex()] = car
	return car
}

func (m *MockCarRepository) GetCars(ctx context.Context) ([]entity.Car, error) {
	if m.ShouldFail {
		return nil, errors.New("car lookup failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Car, 0, len(m.cars))
	for _, c := range m.cars {
		out = append(out, c)
	}
	return out, nil
}

func (m *MockCarRepository) GetCarByID(ctx context.Context, id string) (*entity.Car, error) {
	if m.ShouldFail {
		return nil, errors.New("car lookup failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cars[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *MockCarRepository) CreateCar(ctx context.Context, car *entity.Car) (string, error) {
	if m.ShouldFail {
		return "", errors.New("car creation failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if car.ID.IsZero() {
		car.ID = primitive.NewObjectID()
	}
	m.cars[car.ID.Hex()] = *car
	return car.ID.Hex(), nil
}

func (m *MockCarRepository) UpdateCarByID(ctx context.Context, id string, updates map[string]any) (bool, error) {
	if m.ShouldFail {
		return false, errors.New("car update failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cars[id]
	if !ok {
		return false, nil
	}
	if v, ok := updates["make"].(string); ok {
		c.Make = v
	}
	if v, ok := updates["model"].(string); ok {
		c.Model = v
	}
	if v, ok := updates["year"].(int); ok {
		c.Year = v
	}
	if v, ok := updates["engineType"].(string); ok {
		c.EngineType = v
	}
	if v, ok := updates["VIN"].(string); ok {
		c.VIN = v
	}
	if v, ok := updates["category"].(string); ok {
		c.Category = v
	}
	m.cars[id] = c
	return true, nil
}

func (m *MockCarRepository) DeleteCarByID(ctx context.Context, id string) (bool, error) {
	if m.ShouldFail {
		return false, errors.New("car delete failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cars[id]; !ok {
		return false, nil
	}
	delete(m.cars, id)
	return true, nil
}
