package routes

import (
	"github.com/gin-gonic/gin"

	"jan-server/services/application-settings-api/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates resource route registration.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes builds the route registrar.
func NewRoutes(handlerProvider *handlers.Provider) *Routes {
	return &Routes{
		handlers: handlerProvider,
	}
}

// Register attaches every resource route. middleware runs in front of the
// resource routes only, leaving core routes reachable.
func (r *Routes) Register(router gin.IRouter, middleware ...gin.HandlerFunc) {
	group := router.Group("/custom-labels", middleware...)
	registerCustomLabelRoutes(group, r.handlers.CustomLabel)
}
