package forms

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kotahara/todoweb/internal/constants"
)

// Errors maps a field name to its validation message. An empty map means the
// form is valid.
type Errors map[string]string

// Valid reports whether no field failed validation.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Due date input formats posted by a browser form: a datetime-local widget
// or a plain date.
const (
	dueDateTimeFormat = "2006-01-02T15:04"
	dueDateFormat     = "2006-01-02"
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// TodoForm holds the raw values submitted for creating or editing a todo,
// plus the parsed due date once Validate has run.
type TodoForm struct {
	Title       string
	Description string
	DueDateRaw  string
	DueDate     *time.Time
}

// Validate checks the form against a single validation snapshot taken at now.
// The past-due check compares against now truncated to the whole minute, so a
// due date of "right now" always passes.
func (f *TodoForm) Validate(now time.Time) Errors {
	errs := Errors{}

	f.Title = strings.TrimSpace(f.Title)
	if f.Title == "" {
		errs["title"] = "title is required"
	} else if utf8.RuneCountInString(f.Title) > constants.MaxTitleLength {
		errs["title"] = "title must be 200 characters or fewer"
	}

	if f.DueDateRaw != "" {
		due, err := parseDueDate(f.DueDateRaw)
		if err != nil {
			errs["due_date"] = "enter a valid date and time"
		} else if due.Before(now.Truncate(time.Minute)) {
			errs["due_date"] = "due date cannot be in the past"
		} else {
			f.DueDate = &due
		}
	}

	return errs
}

func parseDueDate(raw string) (time.Time, error) {
	if t, err := time.ParseInLocation(dueDateTimeFormat, raw, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation(dueDateFormat, raw, time.Local)
}

// RegisterForm holds the values submitted on the registration page.
type RegisterForm struct {
	Username  string
	Password1 string
	Password2 string
}

func (f *RegisterForm) Validate() Errors {
	errs := Errors{}

	f.Username = strings.TrimSpace(f.Username)
	switch {
	case f.Username == "":
		errs["username"] = "username is required"
	case utf8.RuneCountInString(f.Username) > constants.MaxUsernameLength:
		errs["username"] = "username must be 150 characters or fewer"
	case !usernamePattern.MatchString(f.Username):
		errs["username"] = "username may contain only letters, digits and @/./+/-/_"
	}

	if len(f.Password1) < constants.MinPasswordLength {
		errs["password1"] = "password must be at least 8 characters"
	} else if f.Password1 != f.Password2 {
		errs["password2"] = "the two password fields didn't match"
	}

	return errs
}

// LoginForm holds the values submitted on the login page.
type LoginForm struct {
	Username string
	Password string
}

func (f *LoginForm) Validate() Errors {
	errs := Errors{}

	f.Username = strings.TrimSpace(f.Username)
	if f.Username == "" {
		errs["username"] = "username is required"
	}
	if f.Password == "" {
		errs["password"] = "password is required"
	}

	return errs
}
