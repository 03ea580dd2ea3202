package objects

import (
	"os"
	"path/filepath"
	"strings"

	"object-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TagHeaderPrefix marks request headers carrying object tags
// (X-Tag-Author: José -> tag "author"). Tag keys are lowercased.
const TagHeaderPrefix = "X-Tag-"

// TagsFromHeaders extracts the tag map from the request headers.
func TagsFromHeaders(c *fiber.Ctx) map[string]string {
	var tags map[string]string
	for key, vals := range c.GetReqHeaders() {
		if !strings.HasPrefix(key, TagHeaderPrefix) || len(vals) == 0 {
			continue
		}
		if tags == nil {
			tags = make(map[string]string)
		}
		tags[strings.ToLower(strings.TrimPrefix(key, TagHeaderPrefix))] = vals[0]
	}
	return tags
}

// Handler handles HTTP requests for object operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the object routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/objects")
	group.Get("/list", h.HandleList)
	group.Get("/exists", h.HandleExists)
	group.Put("/content/*", h.HandlePut)
	group.Get("/content/*", h.HandleGet)
	group.Delete("/content/*", h.HandleDelete)
	group.Get("/meta/*", h.HandleStat)
	group.Get("/tags/*", h.HandleTags)
	group.Delete("/folder/*", h.HandleDeleteFolder)
}

func (h *Handler) stagingPath() string {
	dir := h.service.TempDir()
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, uuid.NewString()+".upload")
}

// HandlePut uploads the request body to the given virtual path.
// @Summary Upload object
// @Description Store the raw request body at the virtual path. Tags are taken from X-Tag-* headers.
// @Tags objects
// @Accept octet-stream
// @Produce json
// @Param path path string true "Virtual path"
// @Success 201 {object} map[string]string
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /objects/content/{path} [put]
func (h *Handler) HandlePut(c *fiber.Ctx) error {
	remote := c.Params("*")
	l := logger.WithRayID(h.service.logger, c)

	staged := h.stagingPath()
	if err := os.WriteFile(staged, c.Body(), 0o600); err != nil {
		l.Error("Failed to stage upload", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer os.Remove(staged)

	contentType := c.Get(fiber.HeaderContentType)
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}

	if err := h.service.PutFile(c.Context(), "", remote, staged, contentType, TagsFromHeaders(c)); err != nil {
		l.Error("Object upload failed", zap.String("path", remote), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"path": remote})
}

// HandleGet streams the object at the given virtual path.
// @Summary Download object
// @Tags objects
// @Produce octet-stream
// @Param path path string true "Virtual path"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Not Found"
// @Router /objects/content/{path} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	remote := c.Params("*")
	l := logger.WithRayID(h.service.logger, c)

	staged := h.stagingPath()
	desc, err := h.service.GetFile(c.Context(), "", remote, staged)
	if err != nil {
		l.Error("Object download failed", zap.String("path", remote), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if desc == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "object not found"})
	}
	defer os.Remove(staged)

	data, err := os.ReadFile(staged)
	if err != nil {
		l.Error("Failed to read staged download", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if desc.ContentType != "" {
		c.Set(fiber.HeaderContentType, desc.ContentType)
	}
	return c.Send(data)
}

// HandleStat returns metadata for the object at the given virtual path.
// @Summary Object metadata
// @Tags objects
// @Produce json
// @Param path path string true "Virtual path"
// @Success 200 {object} objects.Descriptor
// @Failure 404 {object} map[string]string "Not Found"
// @Router /objects/meta/{path} [get]
func (h *Handler) HandleStat(c *fiber.Ctx) error {
	remote := c.Params("*")
	l := logger.WithRayID(h.service.logger, c)

	desc, err := h.service.Stat(c.Context(), "", remote)
	if err != nil {
		l.Error("Object stat failed", zap.String("path", remote), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if desc == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "object not found"})
	}
	return c.JSON(desc)
}

// HandleTags returns the tag map of the object at the given virtual path.
// @Summary Object tags
// @Tags objects
// @Produce json
// @Param path path string true "Virtual path"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Not Found"
// @Router /objects/tags/{path} [get]
func (h *Handler) HandleTags(c *fiber.Ctx) error {
	remote := c.Params("*")
	l := logger.WithRayID(h.service.logger, c)

	tags, err := h.service.Tags(c.Context(), "", remote)
	if err != nil {
		l.Error("Tag retrieval failed", zap.String("path", remote), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if tags == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "object not found or untagged"})
	}
	return c.JSON(tags)
}

// HandleDelete removes the object at the given virtual path.
// @Summary Delete object
// @Tags objects
// @Produce json
// @Param path path string true "Virtual path"
// @Success 200 {object} map[string]bool
// @Router /objects/content/{path} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	remote := c.Params("*")
	l := logger.WithRayID(h.service.logger, c)

	deleted, err := h.service.Delete(c.Context(), "", remote)
	if err != nil {
		l.Error("Object delete failed", zap.String("path", remote), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}

// HandleDeleteFolder removes every object under the given prefix.
// @Summary Delete folder
// @Description Best-effort recursive deletion; partial failures are reported alongside the deleted count.
// @Tags objects
// @Produce json
// @Param path path string true "Prefix"
// @Success 200 {object} map[string]interface{}
// @Router /objects/folder/{path} [delete]
func (h *Handler) HandleDeleteFolder(c *fiber.Ctx) error {
	prefix := c.Params("*")
	l := logger.WithRayID(h.service.logger, c)

	deleted, err := h.service.DeleteFolder(c.Context(), prefix)
	if err != nil {
		l.Warn("Folder delete finished with failures", zap.String("prefix", prefix), zap.Error(err))
		return c.Status(fiber.StatusMultiStatus).JSON(fiber.Map{
			"deleted": deleted,
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}

// HandleList returns the objects under a prefix.
// @Summary List objects
// @Tags objects
// @Produce json
// @Param prefix query string false "Prefix"
// @Param recursive query bool false "Recurse into the subtree"
// @Success 200 {array} objects.Descriptor
// @Router /objects/list [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	prefix := c.Query("prefix")
	recursive := c.QueryBool("recursive")
	l := logger.WithRayID(h.service.logger, c)

	descs := make([]Descriptor, 0)
	for desc := range h.service.List(c.Context(), prefix, recursive) {
		if desc.Err != nil {
			l.Error("Listing failed", zap.String("prefix", prefix), zap.Error(desc.Err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": desc.Err.Error()})
		}
		descs = append(descs, desc)
	}
	return c.JSON(descs)
}

// HandleExists reports whether a virtual path holds an object, or whether a
// prefix has at least one entry when no identifier is given.
// @Summary Existence check
// @Tags objects
// @Produce json
// @Param prefix query string false "Base path"
// @Param identifier query string false "Leaf name; empty performs a folder-style check"
// @Success 200 {object} map[string]bool
// @Router /objects/exists [get]
func (h *Handler) HandleExists(c *fiber.Ctx) error {
	basepath := c.Query("prefix")
	identifier := c.Query("identifier")
	l := logger.WithRayID(h.service.logger, c)

	exists, err := h.service.Exists(c.Context(), basepath, identifier)
	if err != nil {
		l.Error("Existence check failed", zap.String("prefix", basepath), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"exists": exists})
}
