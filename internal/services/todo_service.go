package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kotahara/todoweb/internal/models"
	"github.com/kotahara/todoweb/internal/repository"
)

// ErrTodoNotFound covers both a genuinely missing todo and a todo owned by
// another user; the two cases are indistinguishable to the caller.
var ErrTodoNotFound = errors.New("todo not found")

// TodoService handles todo business logic. Every operation is scoped to the
// acting user's ID.
type TodoService struct {
	todoRepo repository.TodoRepository
}

// NewTodoService creates a new TodoService.
func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
	}
}

// List returns the user's todos, newest created first.
func (s *TodoService) List(userID uint64) ([]models.Todo, error) {
	todos, err := s.todoRepo.ListByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// Get returns a single todo owned by the user.
func (s *TodoService) Get(id, userID uint64) (*models.Todo, error) {
	todo, err := s.todoRepo.FindByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}
	return todo, nil
}

// CreateInput represents input for creating a todo. The values are expected
// to have passed form validation already.
type CreateInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	UserID      uint64
}

// Create persists a new todo owned by the given user.
func (s *TodoService) Create(input CreateInput) (*models.Todo, error) {
	todo := &models.Todo{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		UserID:      input.UserID,
	}

	if err := s.todoRepo.Create(todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return todo, nil
}

// UpdateInput represents input for updating a todo. The edit form always
// posts every field, so the update replaces them wholesale.
type UpdateInput struct {
	Title       string
	Description string
	DueDate     *time.Time
}

// Update applies changes to a todo owned by the user.
func (s *TodoService) Update(id, userID uint64, input UpdateInput) (*models.Todo, error) {
	todo, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}

	todo.Title = input.Title
	todo.Description = input.Description
	todo.DueDate = input.DueDate

	if err := s.todoRepo.Update(todo); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return todo, nil
}

// Delete removes a todo owned by the user.
func (s *TodoService) Delete(id, userID uint64) error {
	if err := s.todoRepo.Delete(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}

// Toggle flips the completed flag of a todo owned by the user. Toggling is
// its own inverse; concurrent toggles are last-write-wins.
func (s *TodoService) Toggle(id, userID uint64) (*models.Todo, error) {
	todo, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}

	todo.Completed = !todo.Completed

	if err := s.todoRepo.Update(todo); err != nil {
		return nil, fmt.Errorf("failed to toggle todo: %w", err)
	}

	return todo, nil
}
