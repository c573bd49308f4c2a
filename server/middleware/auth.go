package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// UsuarioKey clave del usuario autenticado en el contexto Gin
const UsuarioKey = "usuario"

// GinAuthMiddleware valida el token JWT del header Authorization y deja el
// usuario en el contexto. Sin token válido la petición se corta con 401.
func GinAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Falta el header Authorization",
			})
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Formato de Authorization inválido, se espera Bearer",
			})
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Token inválido o expirado",
			})
			return
		}

		usuario, _ := claims["sub"].(string)
		c.Set(UsuarioKey, usuario)

		c.Next()
	}
}

// UsuarioActual devuelve el usuario autenticado del contexto Gin
func UsuarioActual(c *gin.Context) string {
	usuario, exists := c.Get(UsuarioKey)
	if !exists {
		return ""
	}
	if u, ok := usuario.(string); ok {
		return u
	}
	return ""
}
