package modules

import (
	"github.com/gin-gonic/gin"

	repo "github.com/mithaighar/sweetshop/internal/domain/repository"
	handlers "github.com/mithaighar/sweetshop/internal/interface/http"
	"github.com/mithaighar/sweetshop/internal/interface/middleware"
	"github.com/mithaighar/sweetshop/pkg/helpers"
)

// SweetModule registers the inventory endpoints.
// Public: list, search, get. Authenticated: purchase. Admin: create, update,
// delete, restock.
type SweetModule struct {
	Handler *handlers.SweetHandler
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewSweetModule(h *handlers.SweetHandler, users repo.UserRepository, jwt *helpers.JWTManager) *SweetModule {
	return &SweetModule{Handler: h, Users: users, JWT: jwt}
}

func (m *SweetModule) Register(rg *gin.RouterGroup) {
	rg.GET("/sweets", m.Handler.List)
	rg.GET("/sweets/search", m.Handler.Search)
	rg.GET("/sweets/:id", m.Handler.Get)

	auth := middleware.Auth(m.Users, m.JWT)

	rg.POST("/sweets/:id/purchase", auth, m.Handler.Purchase)

	admin := rg.Group("/")
	admin.Use(auth, middleware.RequireAdmin())
	{
		admin.POST("/sweets", m.Handler.Create)
		admin.PUT("/sweets/:id", m.Handler.Update)
		admin.DELETE("/sweets/:id", m.Handler.Delete)
		admin.POST("/sweets/:id/restock", m.Handler.Restock)
	}
}
