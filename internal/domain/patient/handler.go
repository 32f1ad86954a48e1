package patient

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/mediconnect/mediconnect/internal/platform/api"
	"github.com/mediconnect/mediconnect/internal/platform/auth"
)

type Handler struct {
	svc      *Service
	validate *validator.Validate
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	patients := g.Group("/patients", auth.RequireRole("patient"))
	patients.GET("/profile", h.GetProfile)
	patients.PUT("/profile", h.UpdateProfile)
	patients.GET("/doctors", h.ListDoctors)
}

func (h *Handler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()
	profile, err := h.svc.GetProfile(ctx, auth.UserIDFromContext(ctx))
	if err != nil {
		return err
	}
	return api.OK(c, http.StatusOK, "", map[string]interface{}{
		"profile": profile,
	})
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	var upd ProfileUpdate
	if err := c.Bind(&upd); err != nil {
		return api.Validation("invalid request body")
	}
	if err := h.validate.Struct(&upd); err != nil {
		return api.Validation("fullName is required")
	}

	ctx := c.Request().Context()
	if err := h.svc.UpdateProfile(ctx, auth.UserIDFromContext(ctx), &upd); err != nil {
		return err
	}
	return api.OK(c, http.StatusOK, "Profile updated successfully", nil)
}

func (h *Handler) ListDoctors(c echo.Context) error {
	doctors, err := h.svc.ListDoctors(c.Request().Context())
	if err != nil {
		return err
	}
	if doctors == nil {
		doctors = []*Doctor{}
	}
	return api.OK(c, http.StatusOK, "", map[string]interface{}{
		"doctors": doctors,
	})
}
