package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kotahara/todoweb/internal/middleware"
)

// render fills in the data every page template expects (CSRF token, flash
// messages, current username) and renders the named template.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Title"]; !ok {
		data["Title"] = "Todo"
	}
	data["CSRFToken"] = middleware.CSRFToken(c)
	if _, ok := data["Flashes"]; !ok {
		data["Flashes"] = popFlashes(c)
	}
	if _, ok := data["Username"]; !ok {
		data["Username"] = ""
	}
	c.HTML(status, name, data)
}

// addFlash queues a one-time notice for the next rendered page.
func addFlash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		logrus.WithError(err).Warn("failed to save flash message")
	}
}

// popFlashes drains the queued notices. Reading flashes mutates the session,
// so it has to be saved again to clear them.
func popFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return []string{}
	}
	if err := session.Save(); err != nil {
		logrus.WithError(err).Warn("failed to clear flash messages")
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}

// notFound renders the shared 404 page. A todo owned by another user takes
// this same path, so the response leaks nothing about foreign rows.
func notFound(c *gin.Context) {
	render(c, http.StatusNotFound, "not_found.html", gin.H{
		"Title": "Not found",
	})
}
