package contract

import (
	"context"

	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
)

type IUserRepository interface {
	// GetUsers retrieves every user.
	GetUsers(ctx context.Context) ([]entity.User, error)
	// GetUserByID retrieves a user by ObjectId hex. Returns (nil, nil) when
	// no user matches.
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByGithubID retrieves a user by their GitHub numeric-string id.
	// Returns (nil, nil) when no user matches.
	GetUserByGithubID(ctx context.Context, githubID string) (*entity.User, error)
	// CreateUser inserts a new user and returns the generated id as hex.
	CreateUser(ctx context.Context, user *entity.User) (string, error)
	// UpdateUserByID applies a partial $set update. Returns false when no
	// user matches.
	UpdateUserByID(ctx context.Context, id string, updates map[string]any) (bool, error)
	// DeleteUserByID removes a user. Returns false when no user matches.
	DeleteUserByID(ctx context.Context, id string) (bool, error)
}
