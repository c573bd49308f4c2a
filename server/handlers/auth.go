package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "electoral/server/errors"
	"electoral/server/middleware"
	"electoral/server/services"
)

// AuthHandler handlers de autenticación
type AuthHandler struct {
	auth   *services.AuthService
	logger *slog.Logger
}

// NewAuthHandler crea el handler de autenticación
func NewAuthHandler(auth *services.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// LoginRequest credenciales de login
type LoginRequest struct {
	Usuario  string `json:"usuario" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse token emitido
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"access_token"`
}

// Login emite un token JWT
// @Summary Iniciar sesión
// @Description Valida las credenciales y devuelve un token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credenciales"
// @Success 200 {object} LoginResponse "Token emitido"
// @Failure 400 {object} ErrorResponse "Petición inválida"
// @Failure 401 {object} ErrorResponse "Credenciales incorrectas"
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ManejarError(c, h.logger, apperrors.NewValidationError("Cuerpo de petición inválido: se esperan usuario y password", err))
		return
	}

	token, err := h.auth.Login(req.Usuario, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrCredencialesInvalidas) {
			ManejarError(c, h.logger, apperrors.NewUnauthorizedError("Usuario o contraseña incorrectos", err))
			return
		}
		ManejarError(c, h.logger, err)
		return
	}

	middleware.LogInfo(h.logger, c.Request.Context(), "login exitoso", "usuario", req.Usuario)

	c.JSON(http.StatusOK, LoginResponse{Success: true, Token: token})
}

// Logout cierra la sesión. Los tokens son sin estado: el cliente descarta
// el suyo y el servidor solo confirma.
// @Summary Cerrar sesión
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Sesión cerrada"
// @Security BearerAuth
// @Router /api/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sesión cerrada",
	})
}

// ProtectedTest comprueba que el token es válido
// @Summary Probar autenticación
// @Description Devuelve el usuario autenticado del token
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Usuario autenticado"
// @Failure 401 {object} ErrorResponse "Token inválido"
// @Security BearerAuth
// @Router /api/protected-test [get]
func (h *AuthHandler) ProtectedTest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"usuario": middleware.UsuarioActual(c),
	})
}
