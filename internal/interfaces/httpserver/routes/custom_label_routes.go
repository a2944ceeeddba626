package routes

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	domain "jan-server/services/application-settings-api/internal/domain/customlabel"
	"jan-server/services/application-settings-api/internal/interfaces/httpserver/handlers"
	"jan-server/services/application-settings-api/internal/interfaces/httpserver/responses"
)

const (
	errUUIDCreateBody = "6a2f4c1e-3b7d-4e0a-9c58-1f2d3e4a5b60"
	errUUIDUpdateBody = "9b8e7d6c-5a4f-4321-8f0e-d1c2b3a49586"
	errUUIDInvalidID  = "c3d2e1f0-a9b8-4c7d-86e5-f4a3b2c1d0e9"
)

func registerCustomLabelRoutes(router gin.IRoutes, handler *handlers.CustomLabelHandler) {
	router.POST("", createCustomLabel(handler))
	router.GET("", findAllCustomLabels(handler))
	router.GET("/:id", findOneCustomLabel(handler))
	router.PATCH("/:id", updateCustomLabel(handler))
	router.DELETE("/:id", removeCustomLabel(handler))
}

// createCustomLabel godoc
// @Summary      Create a custom label
// @Tags         custom-labels
// @Accept       json
// @Produce      plain
// @Param        request  body      domain.CreateCustomLabel  false  "Custom label"
// @Success      201      {string}  string  "This action adds a new customLabel"
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /custom-labels [post]
func createCustomLabel(handler *handlers.CustomLabelHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input domain.CreateCustomLabel
		if err := bindBody(c, &input); err != nil {
			responses.HandleValidationError(c, err, "invalid request body", errUUIDCreateBody)
			return
		}
		c.String(http.StatusCreated, handler.Create(c.Request.Context(), input))
	}
}

// findAllCustomLabels godoc
// @Summary      List custom labels
// @Tags         custom-labels
// @Produce      plain
// @Success      200  {string}  string  "This action returns all customLabels"
// @Router       /custom-labels [get]
func findAllCustomLabels(handler *handlers.CustomLabelHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, handler.FindAll(c.Request.Context()))
	}
}

// findOneCustomLabel godoc
// @Summary      Get a custom label
// @Tags         custom-labels
// @Produce      plain
// @Param        id   path      integer  true  "Custom label id"
// @Success      200  {string}  string  "This action returns a #7 customLabel"
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /custom-labels/{id} [get]
func findOneCustomLabel(handler *handlers.CustomLabelHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		c.String(http.StatusOK, handler.FindOne(c.Request.Context(), id))
	}
}

// updateCustomLabel godoc
// @Summary      Update a custom label
// @Tags         custom-labels
// @Accept       json
// @Produce      plain
// @Param        id       path      integer                   true   "Custom label id"
// @Param        request  body      domain.UpdateCustomLabel  false  "Fields to change"
// @Success      200      {string}  string  "This action updates a #7 customLabel"
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /custom-labels/{id} [patch]
func updateCustomLabel(handler *handlers.CustomLabelHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var input domain.UpdateCustomLabel
		if err := bindBody(c, &input); err != nil {
			responses.HandleValidationError(c, err, "invalid request body", errUUIDUpdateBody)
			return
		}
		c.String(http.StatusOK, handler.Update(c.Request.Context(), id, input))
	}
}

// removeCustomLabel godoc
// @Summary      Remove a custom label
// @Tags         custom-labels
// @Produce      plain
// @Param        id   path      integer  true  "Custom label id"
// @Success      200  {string}  string  "This action removes a #7 customLabel"
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /custom-labels/{id} [delete]
func removeCustomLabel(handler *handlers.CustomLabelHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		c.String(http.StatusOK, handler.Remove(c.Request.Context(), id))
	}
}

// pathID coerces the :id segment to an integer, writing the validation
// failure response when it is not one.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.HandleValidationError(c, err, "id must be an integer", errUUIDInvalidID)
		return 0, false
	}
	return id, true
}

// bindBody decodes and validates the request body according to its content
// type. A missing body is treated as an empty object. JSON bodies must hold
// exactly one object.
func bindBody(c *gin.Context, dst any) error {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil
	}
	if c.ContentType() != binding.MIMEJSON {
		if err := c.ShouldBind(dst); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}

	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}
	if body[0] != '{' {
		return errors.New("request body must be a JSON object")
	}
	if !json.Valid(body) {
		return errors.New("request body is not valid JSON")
	}
	return binding.JSON.BindBody(body, dst)
}
