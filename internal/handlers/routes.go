package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/kotahara/todoweb/internal/middleware"
)

// RegisterRoutes wires every page and endpoint onto the router. Toggle is
// POST-only: other methods on that path fall through to gin's 404.
func RegisterRoutes(r *gin.Engine, auth *AuthHandler, todos *TodoHandler) {
	r.GET("/login/", middleware.RequireGuest(), auth.LoginPage)
	r.POST("/login/", auth.Login)
	r.GET("/logout/", auth.Logout)
	r.GET("/register/", middleware.RequireGuest(), auth.RegisterPage)
	r.POST("/register/", auth.Register)

	r.GET("/", middleware.RequireAuth(), todos.List)
	r.GET("/create/", middleware.RequireAuth(), todos.CreatePage)
	r.POST("/create/", middleware.RequireAuth(), todos.Create)
	r.GET("/update/:id/", middleware.RequireAuth(), todos.UpdatePage)
	r.POST("/update/:id/", middleware.RequireAuth(), todos.Update)
	r.GET("/delete/:id/", middleware.RequireAuth(), todos.DeletePage)
	r.POST("/delete/:id/", middleware.RequireAuth(), todos.Delete)
	r.POST("/toggle/:id/", middleware.RequireAuth(), todos.Toggle)
}
