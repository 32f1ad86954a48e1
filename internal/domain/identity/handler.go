package identity

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/mediconnect/mediconnect/internal/platform/api"
)

type Handler struct {
	svc      *Service
	validate *validator.Validate
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

// RegisterRoutes wires the public auth endpoints. These sit outside the
// bearer-token middleware.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)
}

func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return api.Validation("invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return api.Validation("fullName, a valid email and a password of at least 8 characters are required")
	}

	session, err := h.svc.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return api.OK(c, http.StatusCreated, "Account created successfully", map[string]interface{}{
		"token": session.Token,
		"user":  session.User,
	})
}

func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return api.Validation("invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return api.Validation("email and password are required")
	}

	session, err := h.svc.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return api.OK(c, http.StatusOK, "Logged in successfully", map[string]interface{}{
		"token": session.Token,
		"user":  session.User,
	})
}
