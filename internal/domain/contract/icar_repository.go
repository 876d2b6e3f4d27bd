package contract

import (
	"context"

	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
)

type ICarRepository interface {
	GetCars(ctx context.Context) ([]entity.Car, error)
	// GetCarByID retrieves a car by ObjectId hex. Returns (nil, nil) when no
	// car matches.
	GetCarByID(ctx context.Context, id string) (*entity.Car, error)
	CreateCar(ctx context.Context, car *entity.Car) (string, error)
	UpdateCarByID(ctx context.Context, id string, updates map[string]any) (bool, error)
	DeleteCarByID(ctx context.Context, id string) (bool, error)
}
