// Package handlers implementa los handlers HTTP del servidor electoral.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"electoral/allocation"
	apperrors "electoral/server/errors"
	"electoral/server/middleware"
	"electoral/sources"
)

// ErrorResponse respuesta JSON de error
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// EnviarError responde un error JSON con el estatus indicado
func EnviarError(c *gin.Context, status int, mensaje string) {
	c.JSON(status, ErrorResponse{Success: false, Error: mensaje})
}

// ManejarError traduce un error de los servicios a la respuesta HTTP que
// corresponde y lo registra con su contexto
func ManejarError(c *gin.Context, logger *slog.Logger, err error) {
	var appErr *apperrors.AppError
	status := http.StatusInternalServerError
	mensaje := "Error interno del servidor"
	contexto := ""

	switch {
	case errors.As(err, &appErr):
		status = appErr.StatusCode()
		mensaje = appErr.UserMessage()
		contexto = appErr.Context
	case errors.Is(err, allocation.ErrSinCandidatos), errors.Is(err, allocation.ErrSinEscanos):
		// distrito sin resultado: nunca se responde un cálculo parcial
		status = http.StatusNotFound
		mensaje = "Sin resultado para el distrito"
	case errors.Is(err, sources.ErrSinDatos):
		status = http.StatusNotFound
		mensaje = "Sin datos para el distrito"
	}

	attrs := []any{
		"status", status,
		"path", c.Request.URL.Path,
	}
	if contexto != "" {
		attrs = append(attrs, "contexto", contexto)
	}
	middleware.LogError(logger, c.Request.Context(), err, "error en handler", attrs...)

	EnviarError(c, status, mensaje)
}

// distritoRequerido lee y valida el parámetro distrito de la query
func distritoRequerido(c *gin.Context, logger *slog.Logger) (string, bool) {
	distrito := c.Query("distrito")
	if distrito == "" {
		ManejarError(c, logger, apperrors.NewValidationError("Falta el parámetro distrito", nil))
		return "", false
	}
	return distrito, true
}

// modoSimulacion lee el parámetro mode con normal como valor por defecto
func modoSimulacion(c *gin.Context) string {
	mode := c.Query("mode")
	if mode == "" {
		return allocation.ModoNormal
	}
	return mode
}
