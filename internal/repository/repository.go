package repository

import (
	"github.com/kotahara/todoweb/internal/models"
)

// TodoRepository defines the interface for todo data access. Every lookup is
// scoped by the owning user's ID; a todo owned by someone else surfaces as
// gorm.ErrRecordNotFound, exactly like a missing row.
type TodoRepository interface {
	// Create creates a new todo
	Create(todo *models.Todo) error

	// FindByID finds a todo by ID, scoped to the owning user
	FindByID(id, userID uint64) (*models.Todo, error)

	// ListByOwner retrieves a user's todos, newest created first
	ListByOwner(userID uint64) ([]models.Todo, error)

	// Update persists changes to a todo
	Update(todo *models.Todo) error

	// Delete removes a todo, scoped to the owning user
	Delete(id, userID uint64) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}
