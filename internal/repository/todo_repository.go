package repository

import (
	"github.com/kotahara/todoweb/internal/models"
	"gorm.io/gorm"
)

// GormTodoRepository is a GORM implementation of TodoRepository
type GormTodoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &GormTodoRepository{db: db}
}

// Create creates a new todo
func (r *GormTodoRepository) Create(todo *models.Todo) error {
	return r.db.Create(todo).Error
}

// FindByID finds a todo by ID, scoped to the owning user
func (r *GormTodoRepository) FindByID(id, userID uint64) (*models.Todo, error) {
	var todo models.Todo
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// ListByOwner retrieves a user's todos, newest created first. The id tiebreak
// keeps the order stable when two rows share a created_at timestamp.
func (r *GormTodoRepository) ListByOwner(userID uint64) ([]models.Todo, error) {
	var todos []models.Todo
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// Update persists changes to a todo
func (r *GormTodoRepository) Update(todo *models.Todo) error {
	return r.db.Save(todo).Error
}

// Delete removes a todo, scoped to the owning user. Deleting a todo that does
// not exist for that user returns gorm.ErrRecordNotFound.
func (r *GormTodoRepository) Delete(id, userID uint64) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Todo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
