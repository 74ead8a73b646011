package constants

const (
	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "todo_session"

	// SessionKeyUserID is the session key holding the authenticated user's ID.
	SessionKeyUserID = "user_id"

	// SessionKeyCSRFToken is the session key holding the anti-forgery token.
	SessionKeyCSRFToken = "csrf_token"

	// ContextKeyUserID is the gin context key for the resolved user ID.
	ContextKeyUserID = "user_id"

	// MaxTitleLength is the maximum length of a todo title.
	MaxTitleLength = 200

	// MaxUsernameLength is the maximum length of a username.
	MaxUsernameLength = 150

	// MinPasswordLength is the minimum length of an account password.
	MinPasswordLength = 8

	// DueSoonWindowDays is how many days out a due date counts as "due soon".
	DueSoonWindowDays = 3
)
