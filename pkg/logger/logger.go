package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger wraps slog.Logger with additional functionality
type Logger struct {
	*slog.Logger
}

// New creates a new logger instance
func New() *Logger {
	level := getLogLevel(os.Getenv("LOG_LEVEL"))

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	// Text handler for development, JSON for production
	var handler slog.Handler
	if gin.Mode() == gin.DebugMode {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// getLogLevel converts string to slog.Level
func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID adds request ID to logger context
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("request_id", requestID)),
	}
}

// WithOffer adds offer and segment identifiers to logger context
func (l *Logger) WithOffer(offerID string, segmentIndex int) *Logger {
	return &Logger{
		Logger: l.Logger.With(
			slog.String("offer_id", offerID),
			slog.Int("segment_index", segmentIndex),
		),
	}
}

// WithError adds error to logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("error", err.Error())),
	}
}

// WithFields adds multiple fields to logger context
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	return &Logger{
		Logger: l.Logger.With(args...),
	}
}

// HTTP logging methods

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("query", c.Request.URL.RawQuery),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
		slog.String("user_agent", c.Request.UserAgent()),
		slog.Int("size", c.Writer.Size()),
	)
}

// LogHTTPError logs an HTTP error
func (l *Logger) LogHTTPError(c *gin.Context, err error, statusCode int) {
	l.Logger.ErrorContext(c.Request.Context(),
		"HTTP Error",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", statusCode),
		slog.String("error", err.Error()),
		slog.String("ip", c.ClientIP()),
	)
}

// Business logic logging methods

// LogSeatMapFetched logs a successful upstream seat-map fetch
func (l *Logger) LogSeatMapFetched(ctx context.Context, segmentToken string, bytes int, duration time.Duration) {
	l.Logger.InfoContext(ctx,
		"Seat Map Fetched",
		slog.String("segment_token", segmentToken),
		slog.Int("bytes", bytes),
		slog.Duration("duration", duration),
	)
}

// LogSeatMapFallback logs that a malformed payload was replaced with the placeholder grid
func (l *Logger) LogSeatMapFallback(ctx context.Context, segmentToken string, reason error) {
	l.Logger.WarnContext(ctx,
		"Seat Map Fallback Grid Served",
		slog.String("segment_token", segmentToken),
		slog.String("reason", reason.Error()),
	)
}

// LogSelectionChanged logs a mutation of a segment's seat selection
func (l *Logger) LogSelectionChanged(ctx context.Context, offerID string, segmentIndex int, action string, seatIDs []string) {
	l.Logger.InfoContext(ctx,
		"Selection Changed",
		slog.String("offer_id", offerID),
		slog.Int("segment_index", segmentIndex),
		slog.String("action", action),
		slog.Any("seat_ids", seatIDs),
	)
}

// LogStorageWriteFailure logs a non-fatal persistence failure
func (l *Logger) LogStorageWriteFailure(ctx context.Context, offerID string, segmentIndex int, err error) {
	l.Logger.WarnContext(ctx,
		"Storage Write Failure",
		slog.String("offer_id", offerID),
		slog.Int("segment_index", segmentIndex),
		slog.String("error", err.Error()),
	)
}

// LogUpstreamCooldown logs that fetching was skipped due to an active rate-limit cooldown
func (l *Logger) LogUpstreamCooldown(ctx context.Context, segmentToken string) {
	l.Logger.WarnContext(ctx,
		"Upstream Cooldown Active",
		slog.String("segment_token", segmentToken),
	)
}

// LogRateLimitExceeded logs when rate limit is exceeded
func (l *Logger) LogRateLimitExceeded(ctx context.Context, ip, endpoint string) {
	l.Logger.WarnContext(ctx,
		"Rate Limit Exceeded",
		slog.String("ip", ip),
		slog.String("endpoint", endpoint),
	)
}

// Convenience helpers

// InfoWithContext logs info with context and fields
func (l *Logger) InfoWithContext(ctx context.Context, msg string, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	l.Logger.InfoContext(ctx, msg, args...)
}

// ErrorWithContext logs error with context and fields
func (l *Logger) ErrorWithContext(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2+2)
	args = append(args, slog.String("error", err.Error()))
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	l.Logger.ErrorContext(ctx, msg, args...)
}

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
)

// GetDefault returns the process-wide default logger
func GetDefault() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New()
	})
	return defaultLogger
}

// SetDefault replaces the process-wide default logger
func SetDefault(logger *Logger) {
	defaultLogger = logger
}
