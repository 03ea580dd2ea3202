package values

import (
	"object-manager/core/logger"
	"object-manager/feature/objects"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the value store as a JSON document API.
type Handler struct {
	store *Store
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes registers the value routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/values")
	group.Put("/*", h.HandlePut)
	group.Get("/*", h.HandleGet)
	group.Delete("/*", h.HandleDelete)
}

// HandlePut stores the JSON request body as a value at the virtual path.
// @Summary Store value
// @Description Persist a JSON document at the virtual path. Tags are taken from X-Tag-* headers.
// @Tags values
// @Accept json
// @Produce json
// @Param path path string true "Virtual path"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /values/{path} [put]
func (h *Handler) HandlePut(c *fiber.Ctx) error {
	remote := c.Params("*")
	l := logger.WithRayID(h.store.logger, c)

	var doc map[string]any
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "body must be a JSON object"})
	}

	if err := h.store.Put(c.Context(), "", remote, doc, objects.TagsFromHeaders(c)); err != nil {
		l.Error("Value store failed", zap.String("path", remote), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"path": remote})
}

// HandleGet returns the value at the virtual path as JSON.
// @Summary Retrieve value
// @Tags values
// @Produce json
// @Param path path string true "Virtual path"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Not Found"
// @Router /values/{path} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	remote := c.Params("*")
	l := logger.WithRayID(h.store.logger, c)

	var doc map[string]any
	found, err := h.store.Get(c.Context(), "", remote, &doc)
	if err != nil {
		l.Error("Value retrieval failed", zap.String("path", remote), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "value not found"})
	}
	return c.JSON(doc)
}

// HandleDelete removes the value at the virtual path.
// @Summary Delete value
// @Tags values
// @Produce json
// @Param path path string true "Virtual path"
// @Success 200 {object} map[string]bool
// @Router /values/{path} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	remote := c.Params("*")
	l := logger.WithRayID(h.store.logger, c)

	deleted, err := h.store.Delete(c.Context(), "", remote)
	if err != nil {
		l.Error("Value delete failed", zap.String("path", remote), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
