package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. The default is the human-readable console
// encoder since this runs as a CLI; VANREBAL_ENV=prod switches to JSON for
// anything scraping the output.
func New() *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	if strings.ToLower(os.Getenv("VANREBAL_ENV")) == "prod" {
		opts = append(opts, zap.Fields(zap.Field{
			Key:    "VANREBAL_ENV",
			Type:   zapcore.StringType,
			String: os.Getenv("VANREBAL_ENV"),
		}))
		logger, err = zap.NewProduction(opts...)
	} else {
		logger, err = zap.NewDevelopment(opts...)
	}

	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

const ContextKey = "LOGGER"

func FromContext(ctx context.Context) *zap.SugaredLogger {
	logger, ok := ctx.Value(ContextKey).(*zap.SugaredLogger)
	if !ok {
		logger = New()
		logger.Warn("no logger found in ctx - creating new one")
	}
	return logger
}

func init() {
	logger := New()
	zap.ReplaceGlobals(logger.Desugar())
}
