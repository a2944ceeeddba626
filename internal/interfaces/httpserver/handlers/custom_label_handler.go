package handlers

import (
	"context"

	domain "jan-server/services/application-settings-api/internal/domain/customlabel"
)

// CustomLabelHandler is the controller for the custom labels resource. Each
// method forwards to the domain service and returns its result unchanged.
type CustomLabelHandler struct {
	service domain.Service
}

// NewCustomLabelHandler wires dependencies for custom label routes.
func NewCustomLabelHandler(service domain.Service) *CustomLabelHandler {
	return &CustomLabelHandler{
		service: service,
	}
}

func (h *CustomLabelHandler) Create(ctx context.Context, input domain.CreateCustomLabel) string {
	return h.service.Create(ctx, input)
}

func (h *CustomLabelHandler) FindAll(ctx context.Context) string {
	return h.service.FindAll(ctx)
}

func (h *CustomLabelHandler) FindOne(ctx context.Context, id int64) string {
	return h.service.FindOne(ctx, id)
}

func (h *CustomLabelHandler) Update(ctx context.Context, id int64, input domain.UpdateCustomLabel) string {
	return h.service.Update(ctx, id, input)
}

func (h *CustomLabelHandler) Remove(ctx context.Context, id int64) string {
	return h.service.Remove(ctx, id)
}
