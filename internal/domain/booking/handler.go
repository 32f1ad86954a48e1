package booking

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
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
	appts := g.Group("/appointments", auth.RequireRole("patient"))
	appts.POST("/book", h.Book)
	appts.GET("", h.List)
	appts.PUT("/:id/cancel", h.Cancel)
}

func (h *Handler) Book(c echo.Context) error {
	var req BookRequest
	if err := c.Bind(&req); err != nil {
		return api.Validation("Please provide all required fields")
	}
	if err := h.validate.Struct(&req); err != nil {
		return api.Validation("Please provide all required fields")
	}

	ctx := c.Request().Context()
	id, err := h.svc.Book(ctx, auth.UserIDFromContext(ctx), auth.EmailFromContext(ctx), req)
	if err != nil {
		return err
	}

	return api.OK(c, http.StatusCreated, "Appointment booked successfully", map[string]interface{}{
		"appointmentId": id,
	})
}

func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := h.svc.List(ctx, auth.UserIDFromContext(ctx))
	if err != nil {
		return err
	}
	if items == nil {
		items = []*AppointmentView{}
	}
	return api.OK(c, http.StatusOK, "", map[string]interface{}{
		"appointments": items,
	})
}

func (h *Handler) Cancel(c echo.Context) error {
	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return api.NotFound("Appointment not found")
	}

	ctx := c.Request().Context()
	if err := h.svc.Cancel(ctx, auth.UserIDFromContext(ctx), appointmentID); err != nil {
		return err
	}
	return api.OK(c, http.StatusOK, "Appointment cancelled successfully", nil)
}
