package mocks

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gearshift-labs/partsdepot/internal/domain/contract"
	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
)

// MockUserRepository is an in-memory implementation of IUserRepository.
type MockUserRepository struct {
	mu    sync.Mutex
	users map[string]entity.User

	// Control mock behavior
	ShouldFail bool
}

var _ contract.IUserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: map[string]entity.User{}}
}

// Seed stores a user directly, assigning an id if missing.
func (m *MockUserRepository) Seed(user entity.User) entity.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	m.users[user.ID.Hex()] = user
	return user
}

func (m *MockUserRepository) GetUsers(ctx context.Context) ([]entity.User, error) {
	if m.ShouldFail {
		return nil, errors.New("user lookup failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	if m.ShouldFail {
		return nil, errors.New("user lookup failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *MockUserRepository) GetUserByGithubID(ctx context.Context, githubID string) (*entity.User, error) {
	if m.ShouldFail {
		return nil, errors.New("user lookup failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.GithubID == githubID {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *entity.User) (string, error) {
	if m.ShouldFail {
		return "", errors.New("user creation failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	m.users[user.ID.Hex()] = *user
	return user.ID.Hex(), nil
}

func (m *MockUserRepository) UpdateUserByID(ctx context.Context, id string, updates map[string]any) (bool, error) {
	if m.ShouldFail {
		return false, errors.New("user update failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return false, nil
	}
	if v, ok := updates["name"].(string); ok {
		u.Name = v
	}
	if v, ok := updates["email"].(string); ok {
		u.Email = v
	}
	if v, ok := updates["role"].(string); ok {
		u.Role = entity.UserRole(v)
	}
	m.users[id] = u
	return true, nil
}

func (m *MockUserRepository) DeleteUserByID(ctx context.Context, id string) (bool, error) {
	if m.ShouldFail {
		return false, errors.New("user delete failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	return true, nil
}
