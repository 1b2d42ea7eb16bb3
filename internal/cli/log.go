package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/composite/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 3 files (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability hooks
// =============================================================================

// logHooks reports pipeline, cache and shape events at debug level.
type logHooks struct {
	logger *log.Logger
}

// registerHooks installs logHooks as the process-wide observability hooks.
func registerHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	observability.SetShapeHooks(h)
}

func (h logHooks) OnComputeStart(_ context.Context, filled, holes int) {
	h.logger.Debug("compute started", "filled", filled, "holes", holes)
}

func (h logHooks) OnComputeComplete(_ context.Context, totalArea float64, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("compute failed", "err", err, "duration", d)
		return
	}
	h.logger.Debug("compute done", "area", totalArea, "duration", d)
}

func (h logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render started", "formats", formats)
}

func (h logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "err", err)
		return
	}
	h.logger.Debug("render done", "formats", formats, "duration", d)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h logHooks) OnShapeAdded(_ context.Context, role, kind string, area float64) {
	h.logger.Debug("shape added", "role", role, "kind", kind, "area", area)
}

func (h logHooks) OnShapeRejected(_ context.Context, role, kind string, err error) {
	h.logger.Debug("shape rejected", "role", role, "kind", kind, "err", err)
}
