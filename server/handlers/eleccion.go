package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "electoral/server/errors"
	"electoral/server/middleware"
	"electoral/server/services"
	"electoral/storage"
)

// EleccionHandler handlers del cálculo electoral
type EleccionHandler struct {
	eleccion   *services.EleccionService
	candidatos *services.CandidatoService
	export     *services.ExportService
	archivo    *storage.ArchivoResultados
	logger     *slog.Logger
}

// NewEleccionHandler crea el handler electoral
func NewEleccionHandler(
	eleccion *services.EleccionService,
	candidatos *services.CandidatoService,
	export *services.ExportService,
	archivo *storage.ArchivoResultados,
	logger *slog.Logger,
) *EleccionHandler {
	return &EleccionHandler{
		eleccion:   eleccion,
		candidatos: candidatos,
		export:     export,
		archivo:    archivo,
		logger:     logger,
	}
}

// CandidatosLimpios lista canónica de candidatos de un distrito
// @Summary Candidatos reconciliados
// @Description Lista canónica de candidatos del distrito, integrada desde las tres fuentes y ordenada por votos
// @Tags eleccion
// @Produce json
// @Param distrito query string true "Código del distrito (6001..6028)"
// @Success 200 {object} map[string]interface{} "Candidatos del distrito"
// @Failure 400 {object} ErrorResponse "Falta el distrito"
// @Failure 502 {object} ErrorResponse "Fuente de datos no disponible"
// @Security BearerAuth
// @Router /candidatos-limpios [get]
func (h *EleccionHandler) CandidatosLimpios(c *gin.Context) {
	distrito, ok := distritoRequerido(c, h.logger)
	if !ok {
		return
	}

	candidatos, err := h.candidatos.CandidatosLimpios(c.Request.Context(), distrito)
	if err != nil {
		ManejarError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"distrito":   distrito,
		"total":      len(candidatos),
		"candidatos": candidatos,
	})
}

// VotosPorPacto votos agregados por pacto de un distrito
// @Summary Votos por pacto
// @Description Totales y porcentajes de votos por pacto, con blancos y nulos
// @Tags eleccion
// @Produce json
// @Param distrito query string true "Código del distrito (6001..6028)"
// @Success 200 {object} services.ResumenVotos "Resumen de votos"
// @Failure 400 {object} ErrorResponse "Falta el distrito"
// @Failure 502 {object} ErrorResponse "Fuente de datos no disponible"
// @Security BearerAuth
// @Router /votos-por-pacto [get]
func (h *EleccionHandler) VotosPorPacto(c *gin.Context) {
	distrito, ok := distritoRequerido(c, h.logger)
	if !ok {
		return
	}

	resumen, err := h.candidatos.VotosPorPacto(c.Request.Context(), distrito)
	if err != nil {
		ManejarError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"resumen": resumen,
	})
}

// DhondtActual asignación D'Hondt de un distrito
// @Summary Cálculo D'Hondt del distrito
// @Description Asignación de escaños en dos niveles para el distrito, con modo de simulación opcional
// @Tags eleccion
// @Produce json
// @Param distrito query string true "Código del distrito (6001..6028)"
// @Param mode query string false "Modo de simulación (normal, derechas, izquierdas)" default(normal)
// @Success 200 {object} services.ResultadoDistritoCompleto "Resultado del distrito"
// @Failure 400 {object} ErrorResponse "Falta el distrito"
// @Failure 404 {object} ErrorResponse "Distrito sin resultado"
// @Security BearerAuth
// @Router /dhondt-actual [get]
func (h *EleccionHandler) DhondtActual(c *gin.Context) {
	distrito, ok := distritoRequerido(c, h.logger)
	if !ok {
		return
	}
	mode := modoSimulacion(c)

	completo, err := h.eleccion.CalcularDistrito(c.Request.Context(), distrito, mode)
	if err != nil {
		ManejarError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"resultado": completo,
	})
}

// HemicicloNacional agregación nacional de todos los distritos
// @Summary Hemiciclo nacional
// @Description Agrega el cálculo D'Hondt de los 28 distritos en el resultado nacional
// @Tags eleccion
// @Produce json
// @Param mode query string false "Modo de simulación (normal, derechas, izquierdas)" default(normal)
// @Success 200 {object} allocation.ResultadoNacional "Resultado nacional"
// @Security BearerAuth
// @Router /hemiciclo-nacional [get]
func (h *EleccionHandler) HemicicloNacional(c *gin.Context) {
	mode := modoSimulacion(c)

	resultado, err := h.eleccion.CalcularNacional(c.Request.Context(), mode)
	if err != nil {
		ManejarError(c, h.logger, err)
		return
	}

	// el cálculo queda archivado junto con el usuario que lo pidió;
	// una falla del archivo no voltea la respuesta
	if h.archivo != nil {
		usuario := middleware.UsuarioActual(c)
		if _, err := h.archivo.GuardarCalculoNacional(resultado, usuario); err != nil {
			middleware.LogWarn(h.logger, c.Request.Context(), "no se pudo archivar el cálculo nacional", "error", err)
		}
	}

	c.JSON(http.StatusOK, resultado)
}

// ExportarNacional exporta el hemiciclo nacional a Excel
// @Summary Exportar hemiciclo a Excel
// @Description Genera un .xlsx con los totales por pacto y los diputados electos
// @Tags eleccion
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param mode query string false "Modo de simulación (normal, derechas, izquierdas)" default(normal)
// @Success 200 {file} binary "Archivo Excel"
// @Security BearerAuth
// @Router /hemiciclo-nacional/export [get]
func (h *EleccionHandler) ExportarNacional(c *gin.Context) {
	mode := modoSimulacion(c)

	resultado, err := h.eleccion.CalcularNacional(c.Request.Context(), mode)
	if err != nil {
		ManejarError(c, h.logger, err)
		return
	}

	f, err := h.export.ExcelNacional(resultado)
	if err != nil {
		ManejarError(c, h.logger, apperrors.NewInternalError("error generando el Excel", err))
		return
	}
	defer f.Close()

	nombre := fmt.Sprintf("hemiciclo_%s_%s.xlsx", mode, time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nombre))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		middleware.LogError(h.logger, c.Request.Context(), err, "error escribiendo el Excel")
	}
}
