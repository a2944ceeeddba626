package handlers

import (
	domain "jan-server/services/application-settings-api/internal/domain/customlabel"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	CustomLabel *CustomLabelHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(customLabelService domain.Service) *Provider {
	return &Provider{
		CustomLabel: NewCustomLabelHandler(customLabelService),
	}
}
