package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kotahara/todoweb/internal/forms"
	"github.com/kotahara/todoweb/internal/middleware"
	"github.com/kotahara/todoweb/internal/services"
)

// TodoHandler coordinates the todo pages. Every handler resolves the current
// user from the session context first; lookups are scoped to that user.
type TodoHandler struct {
	todoService *services.TodoService
	authService *services.AuthService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(todoService *services.TodoService, authService *services.AuthService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
		authService: authService,
	}
}

// List renders the current user's todos, newest created first.
func (h *TodoHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login/")
		return
	}

	todos, err := h.todoService.List(userID)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	render(c, http.StatusOK, "todo_list.html", gin.H{
		"Title":    "My todos",
		"Todos":    todos,
		"Username": h.username(userID),
	})
}

// CreatePage renders an empty todo form.
func (h *TodoHandler) CreatePage(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	render(c, http.StatusOK, "todo_form.html", gin.H{
		"Title":    "Create todo",
		"Action":   "/create/",
		"Form":     &forms.TodoForm{},
		"Errors":   forms.Errors{},
		"Username": h.username(userID),
	})
}

// Create validates the submitted form and persists a new todo owned by the
// current user. Validation failure re-renders the form with HTTP 200.
func (h *TodoHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login/")
		return
	}

	form := todoFormFrom(c)
	if errs := form.Validate(time.Now()); !errs.Valid() {
		render(c, http.StatusOK, "todo_form.html", gin.H{
			"Title":    "Create todo",
			"Action":   "/create/",
			"Form":     form,
			"Errors":   errs,
			"Username": h.username(userID),
		})
		return
	}

	_, err := h.todoService.Create(services.CreateInput{
		Title:       form.Title,
		Description: form.Description,
		DueDate:     form.DueDate,
		UserID:      userID,
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	addFlash(c, "todo created")
	c.Redirect(http.StatusFound, "/")
}

// UpdatePage renders the edit form for a todo the current user owns.
func (h *TodoHandler) UpdatePage(c *gin.Context) {
	userID, todoID, ok := h.resolve(c)
	if !ok {
		return
	}

	todo, err := h.todoService.Get(todoID, userID)
	if err != nil {
		h.respondTodoError(c, err)
		return
	}

	form := &forms.TodoForm{
		Title:       todo.Title,
		Description: todo.Description,
	}
	if todo.DueDate != nil {
		form.DueDateRaw = todo.DueDate.Format("2006-01-02T15:04")
	}

	render(c, http.StatusOK, "todo_form.html", gin.H{
		"Title":    "Edit todo",
		"Action":   "/update/" + strconv.FormatUint(todoID, 10) + "/",
		"Form":     form,
		"Errors":   forms.Errors{},
		"Username": h.username(userID),
	})
}

// Update validates the submitted form and saves the changes. Foreign or
// missing todos are a 404; validation failure re-renders with HTTP 200.
func (h *TodoHandler) Update(c *gin.Context) {
	userID, todoID, ok := h.resolve(c)
	if !ok {
		return
	}

	// Ownership check before validation, so a foreign id is a 404 even when
	// the submitted form is also invalid.
	if _, err := h.todoService.Get(todoID, userID); err != nil {
		h.respondTodoError(c, err)
		return
	}

	form := todoFormFrom(c)
	if errs := form.Validate(time.Now()); !errs.Valid() {
		render(c, http.StatusOK, "todo_form.html", gin.H{
			"Title":    "Edit todo",
			"Action":   "/update/" + strconv.FormatUint(todoID, 10) + "/",
			"Form":     form,
			"Errors":   errs,
			"Username": h.username(userID),
		})
		return
	}

	_, err := h.todoService.Update(todoID, userID, services.UpdateInput{
		Title:       form.Title,
		Description: form.Description,
		DueDate:     form.DueDate,
	})
	if err != nil {
		h.respondTodoError(c, err)
		return
	}

	addFlash(c, "todo updated")
	c.Redirect(http.StatusFound, "/")
}

// DeletePage renders the delete confirmation page.
func (h *TodoHandler) DeletePage(c *gin.Context) {
	userID, todoID, ok := h.resolve(c)
	if !ok {
		return
	}

	todo, err := h.todoService.Get(todoID, userID)
	if err != nil {
		h.respondTodoError(c, err)
		return
	}

	render(c, http.StatusOK, "todo_confirm_delete.html", gin.H{
		"Title":    "Delete todo",
		"Todo":     todo,
		"Username": h.username(userID),
	})
}

// Delete removes the todo and returns to the list.
func (h *TodoHandler) Delete(c *gin.Context) {
	userID, todoID, ok := h.resolve(c)
	if !ok {
		return
	}

	if err := h.todoService.Delete(todoID, userID); err != nil {
		h.respondTodoError(c, err)
		return
	}

	addFlash(c, "todo deleted")
	c.Redirect(http.StatusFound, "/")
}

// Toggle flips the completed flag and answers with a machine-readable body.
// The route table only registers POST for this path.
func (h *TodoHandler) Toggle(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	todoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	todo, err := h.todoService.Toggle(todoID, userID)
	if err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"completed": todo.Completed})
}

// resolve extracts the current user and the :id path parameter. An
// unparseable id is treated like a missing todo.
func (h *TodoHandler) resolve(c *gin.Context) (userID, todoID uint64, ok bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login/")
		return 0, 0, false
	}

	todoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c)
		return 0, 0, false
	}

	return userID, todoID, true
}

func (h *TodoHandler) respondTodoError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrTodoNotFound) {
		notFound(c)
		return
	}
	c.String(http.StatusInternalServerError, "internal server error")
}

// username looks up the display name for the page header; an empty string is
// fine when the lookup fails.
func (h *TodoHandler) username(userID uint64) string {
	user, err := h.authService.GetUser(userID)
	if err != nil {
		return ""
	}
	return user.Username
}

func todoFormFrom(c *gin.Context) *forms.TodoForm {
	return &forms.TodoForm{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		DueDateRaw:  c.PostForm("due_date"),
	}
}
