package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kotahara/todoweb/internal/models"
	"github.com/kotahara/todoweb/internal/repository"
)

type todoServiceEnv struct {
	db    *gorm.DB
	svc   *TodoService
	alice *models.User
	bob   *models.User
}

func setupTodoService(t *testing.T) todoServiceEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Todo{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	alice := &models.User{Username: "alice", PasswordHash: "hashedpassword"}
	bob := &models.User{Username: "bob", PasswordHash: "hashedpassword"}
	require.NoError(t, db.Create(alice).Error)
	require.NoError(t, db.Create(bob).Error)

	return todoServiceEnv{
		db:    db,
		svc:   NewTodoService(repository.NewTodoRepository(db)),
		alice: alice,
		bob:   bob,
	}
}

func TestTodoService_CreateAndList(t *testing.T) {
	env := setupTodoService(t)

	due := time.Now().Add(24 * time.Hour)
	todo, err := env.svc.Create(CreateInput{
		Title:   "Buy milk",
		DueDate: &due,
		UserID:  env.alice.ID,
	})
	require.NoError(t, err)
	require.False(t, todo.Completed)

	todos, err := env.svc.List(env.alice.ID)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	require.Equal(t, "Buy milk", todos[0].Title)

	// Bob sees nothing.
	todos, err = env.svc.List(env.bob.ID)
	require.NoError(t, err)
	require.Empty(t, todos)
}

func TestTodoService_Update(t *testing.T) {
	env := setupTodoService(t)

	todo, err := env.svc.Create(CreateInput{Title: "before", UserID: env.alice.ID})
	require.NoError(t, err)

	due := time.Now().Add(48 * time.Hour)
	updated, err := env.svc.Update(todo.ID, env.alice.ID, UpdateInput{
		Title:       "after",
		Description: "details",
		DueDate:     &due,
	})
	require.NoError(t, err)
	require.Equal(t, "after", updated.Title)
	require.Equal(t, "details", updated.Description)
	require.NotNil(t, updated.DueDate)
}

func TestTodoService_Toggle_Involutive(t *testing.T) {
	env := setupTodoService(t)

	todo, err := env.svc.Create(CreateInput{Title: "toggle me", UserID: env.alice.ID})
	require.NoError(t, err)
	require.False(t, todo.Completed)

	toggled, err := env.svc.Toggle(todo.ID, env.alice.ID)
	require.NoError(t, err)
	require.True(t, toggled.Completed)

	toggled, err = env.svc.Toggle(todo.ID, env.alice.ID)
	require.NoError(t, err)
	require.False(t, toggled.Completed)
}

func TestTodoService_OwnershipIsolation(t *testing.T) {
	env := setupTodoService(t)

	todo, err := env.svc.Create(CreateInput{Title: "alice's", UserID: env.alice.ID})
	require.NoError(t, err)

	_, err = env.svc.Get(todo.ID, env.bob.ID)
	require.True(t, errors.Is(err, ErrTodoNotFound))

	_, err = env.svc.Update(todo.ID, env.bob.ID, UpdateInput{Title: "stolen"})
	require.True(t, errors.Is(err, ErrTodoNotFound))

	_, err = env.svc.Toggle(todo.ID, env.bob.ID)
	require.True(t, errors.Is(err, ErrTodoNotFound))

	err = env.svc.Delete(todo.ID, env.bob.ID)
	require.True(t, errors.Is(err, ErrTodoNotFound))

	// Untouched for alice.
	got, err := env.svc.Get(todo.ID, env.alice.ID)
	require.NoError(t, err)
	require.Equal(t, "alice's", got.Title)
	require.False(t, got.Completed)
}

func TestTodoService_Delete(t *testing.T) {
	env := setupTodoService(t)

	todo, err := env.svc.Create(CreateInput{Title: "doomed", UserID: env.alice.ID})
	require.NoError(t, err)

	require.NoError(t, env.svc.Delete(todo.ID, env.alice.ID))

	_, err = env.svc.Get(todo.ID, env.alice.ID)
	require.True(t, errors.Is(err, ErrTodoNotFound))

	err = env.svc.Delete(todo.ID, env.alice.ID)
	require.True(t, errors.Is(err, ErrTodoNotFound))
}
