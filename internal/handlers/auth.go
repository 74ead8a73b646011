package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/kotahara/todoweb/internal/constants"
	"github.com/kotahara/todoweb/internal/forms"
	"github.com/kotahara/todoweb/internal/services"
)

// AuthHandler coordinates the login, registration and logout pages.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{
		"Title":  "Log in",
		"Form":   &forms.LoginForm{},
		"Errors": forms.Errors{},
		"Next":   safeNext(c.Query("next")),
	})
}

// Login authenticates the submitted credentials and starts a session. A
// failed login re-renders the form with an inline message and HTTP 200.
func (h *AuthHandler) Login(c *gin.Context) {
	form := &forms.LoginForm{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	}
	next := safeNext(c.PostForm("next"))
	if next == "" {
		next = safeNext(c.Query("next"))
	}

	renderError := func(message string, errs forms.Errors) {
		render(c, http.StatusOK, "login.html", gin.H{
			"Title":  "Log in",
			"Form":   form,
			"Errors": errs,
			"Error":  message,
			"Next":   next,
		})
	}

	if errs := form.Validate(); !errs.Valid() {
		renderError("", errs)
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			renderError("invalid username or password", forms.Errors{})
			return
		}
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	session := sessions.Default(c)
	session.Set(constants.SessionKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		c.String(http.StatusInternalServerError, "failed to save session")
		return
	}

	if next == "" {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{
		"Title":  "Register",
		"Form":   &forms.RegisterForm{},
		"Errors": forms.Errors{},
	})
}

// Register creates a new account. Any validation failure re-renders the form
// with HTTP 200 and no user is created.
func (h *AuthHandler) Register(c *gin.Context) {
	form := &forms.RegisterForm{
		Username:  c.PostForm("username"),
		Password1: c.PostForm("password1"),
		Password2: c.PostForm("password2"),
	}

	renderForm := func(errs forms.Errors) {
		render(c, http.StatusOK, "register.html", gin.H{
			"Title":  "Register",
			"Form":   form,
			"Errors": errs,
		})
	}

	if errs := form.Validate(); !errs.Valid() {
		renderForm(errs)
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Username: form.Username,
		Password: form.Password1,
	})
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			renderForm(forms.Errors{"username": err.Error()})
			return
		}
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	addFlash(c, fmt.Sprintf("account created for %s, please log in", user.Username))
	c.Redirect(http.StatusFound, "/login/")
}

// Logout terminates the session and returns to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.String(http.StatusInternalServerError, "failed to logout")
		return
	}

	c.Redirect(http.StatusFound, "/login/")
}

// safeNext only accepts relative paths as a post-login redirect target, so
// the next parameter cannot send the browser to another host.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return ""
}
