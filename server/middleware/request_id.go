package middleware

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// RequestIDKey clave del request ID en el contexto
type RequestIDKey struct{}

// GetRequestID extrae el request ID del contexto
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	reqID, ok := ctx.Value(RequestIDKey{}).(string)
	if !ok {
		return ""
	}
	return reqID
}

// SetRequestID guarda el request ID en el contexto
func SetRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, RequestIDKey{}, reqID)
}

// NuevoRequestID genera un request ID nuevo
func NuevoRequestID() string {
	return uuid.New().String()
}

// LogError registra un error con el request ID del contexto
func LogError(logger *slog.Logger, ctx context.Context, err error, msg string, attrs ...any) {
	attrs = append(attrs, "error", err, "request_id", GetRequestID(ctx))
	logger.Error(msg, attrs...)
}

// LogWarn registra una advertencia con el request ID del contexto
func LogWarn(logger *slog.Logger, ctx context.Context, msg string, attrs ...any) {
	attrs = append(attrs, "request_id", GetRequestID(ctx))
	logger.Warn(msg, attrs...)
}

// LogInfo registra un mensaje informativo con el request ID del contexto
func LogInfo(logger *slog.Logger, ctx context.Context, msg string, attrs ...any) {
	attrs = append(attrs, "request_id", GetRequestID(ctx))
	logger.Info(msg, attrs...)
}
