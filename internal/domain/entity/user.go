package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user in the system. Users are created through
// the GitHub OAuth flow, never through a direct POST.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	Role           UserRole           `bson:"role" json:"role"`
	GithubID       string             `bson:"githubId,omitempty" json:"githubId,omitempty"`
	AvatarURL      string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	RegisteredDate time.Time          `bson:"registeredDate" json:"registeredDate"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleClient   UserRole = "client"
	UserRoleAdmin    UserRole = "admin"
	UserRoleEmployee UserRole = "employee"
)

func DefaultRole() UserRole {
	return UserRoleClient
}

// UserUpdateFields is the set of fields a PUT /users/:id may touch.
var UserUpdateFields = []string{"name", "email", "role"}

// UpdateView projects the user onto its update allowlist for no-op detection.
func (u *User) UpdateView() map[string]any {
	return map[string]any{
		"name":  u.Name,
		"email": u.Email,
		"role":  string(u.Role),
	}
}
