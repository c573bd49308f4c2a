package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "electoral/server/errors"
	"electoral/server/middleware"
	"electoral/storage"
)

// Invalidador limpia los caches de fuentes
type Invalidador interface {
	Invalidate()
}

// SistemaHandler handlers de salud, índice e historial
type SistemaHandler struct {
	archivo *storage.ArchivoResultados
	cache   Invalidador
	version string
	logger  *slog.Logger
}

// NewSistemaHandler crea el handler de sistema
func NewSistemaHandler(archivo *storage.ArchivoResultados, cache Invalidador, version string, logger *slog.Logger) *SistemaHandler {
	return &SistemaHandler{archivo: archivo, cache: cache, version: version, logger: logger}
}

// Health estado del servicio
// @Summary Estado del servicio
// @Tags sistema
// @Produce json
// @Success 200 {object} map[string]interface{} "Servicio operativo"
// @Router /api/health [get]
func (h *SistemaHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

// Index índice del servicio
// @Summary Índice del servicio
// @Tags sistema
// @Produce json
// @Success 200 {object} map[string]interface{} "Endpoints disponibles"
// @Router / [get]
func (h *SistemaHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"servicio": "Servicio de cálculo electoral D'Hondt",
		"version":  h.version,
		"endpoints": []string{
			"POST /api/login",
			"POST /api/logout",
			"GET /api/health",
			"GET /api/protected-test",
			"GET /candidatos-limpios?distrito=",
			"GET /votos-por-pacto?distrito=",
			"GET /dhondt-actual?distrito=&mode=",
			"GET /hemiciclo-nacional?mode=",
			"GET /api/hemiciclo-nacional/export?mode=",
			"GET /api/resultados/historial",
			"GET /api/resultados/historial/:id",
			"POST /api/cache/clear",
		},
	})
}

// LimpiarCache invalida los caches de fuentes
// @Summary Limpiar caches
// @Description Invalida los caches de padrón, metadatos y escrutinio
// @Tags sistema
// @Produce json
// @Success 200 {object} map[string]interface{} "Caches invalidados"
// @Security BearerAuth
// @Router /api/cache/clear [post]
func (h *SistemaHandler) LimpiarCache(c *gin.Context) {
	if h.cache != nil {
		h.cache.Invalidate()
	}
	middleware.LogInfo(h.logger, c.Request.Context(), "caches de fuentes invalidados")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Caches invalidados",
	})
}

// Historial historial de cálculos nacionales archivados
// @Summary Historial de cálculos
// @Description Lista los cálculos nacionales archivados, del más nuevo al más viejo
// @Tags sistema
// @Produce json
// @Param limit query int false "Cantidad máxima de registros" default(50)
// @Param mode query string false "Filtro por modo de simulación"
// @Success 200 {object} map[string]interface{} "Registros del historial"
// @Security BearerAuth
// @Router /api/resultados/historial [get]
func (h *SistemaHandler) Historial(c *gin.Context) {
	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			ManejarError(c, h.logger, apperrors.NewValidationError("limit debe ser un entero positivo", err))
			return
		}
		limit = parsed
	}

	registros, err := h.archivo.Historial(limit, c.Query("mode"))
	if err != nil {
		ManejarError(c, h.logger, err)
		return
	}
	if registros == nil {
		registros = []storage.RegistroCalculo{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"total":     len(registros),
		"registros": registros,
	})
}

// HistorialDetalle resultado nacional completo de un cálculo archivado
// @Summary Detalle de un cálculo archivado
// @Description Devuelve el resultado nacional completo archivado bajo el id indicado
// @Tags sistema
// @Produce json
// @Param id path int true "Id del registro"
// @Success 200 {object} allocation.ResultadoNacional "Resultado archivado"
// @Failure 400 {object} ErrorResponse "Id inválido"
// @Failure 404 {object} ErrorResponse "Registro no encontrado"
// @Security BearerAuth
// @Router /api/resultados/historial/{id} [get]
func (h *SistemaHandler) HistorialDetalle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ManejarError(c, h.logger, apperrors.NewValidationError("id debe ser un entero positivo", err))
		return
	}

	resultado, err := h.archivo.ObtenerCalculo(id)
	if err != nil {
		if errors.Is(err, storage.ErrRegistroNoEncontrado) {
			ManejarError(c, h.logger, apperrors.NewNotFoundError("Cálculo no encontrado", err))
			return
		}
		ManejarError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"resultado": resultado,
	})
}
