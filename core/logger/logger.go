package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger from cfg. Debug level selects the development
// preset; Format chooses between console and JSON encoding.
func New(cfg *Config) (*zap.Logger, error) {
	base := zap.NewProductionConfig()
	if cfg.Level == "debug" {
		base = zap.NewDevelopmentConfig()
	}

	if cfg.Format == "console" {
		base.Encoding = "console"
		base.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		base.DisableStacktrace = true
	} else {
		base.Encoding = "json"
	}

	base.EncoderConfig.LevelKey = "level"
	base.EncoderConfig.TimeKey = "time"
	base.EncoderConfig.MessageKey = "message"

	return base.Build()
}

// WithRayID annotates l with the request's ray id when the middleware
// has stored one in the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if rid, ok := c.Locals("ray_id").(string); ok && rid != "" {
		return l.With(zap.String("ray_id", rid))
	}
	return l
}
