package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-api/internal/domain"
	"inventory-api/internal/service"
	httpez "inventory-api/internal/transport/http/ez"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Mount 公共分组：/auth/register、/auth/login
func (h *AuthHandler) Mount(e httpez.EZ) {
	httpez.RegisterAction(e, httpez.Action[service.RegisterInput, *domain.PublicUser]{
		Method:  http.MethodPost,
		Path:    "/auth/register",
		Binder:  httpez.BindJSON,
		Status:  http.StatusCreated,
		Message: "User registered successfully",
		Handler: func(c *gin.Context, in *service.RegisterInput) (*domain.PublicUser, error) {
			return h.svc.Register(c.Request.Context(), *in)
		},
	})

	httpez.RegisterAction(e, httpez.Action[service.LoginInput, *service.LoginResult]{
		Method:  http.MethodPost,
		Path:    "/auth/login",
		Binder:  httpez.BindJSON,
		Message: "Login successful",
		Handler: func(c *gin.Context, in *service.LoginInput) (*service.LoginResult, error) {
			return h.svc.Login(c.Request.Context(), *in)
		},
	})
}
