package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"electoral/server/middleware"
)

// NewRouter arma el router Gin con los middleware y todas las rutas
func NewRouter(c *Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinRecoveryMiddleware(c.Logger))
	router.Use(middleware.GinLoggerMiddleware(c.Logger))
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())

	// públicas
	router.GET("/", c.SistemaHandler.Index)
	router.GET("/api/health", c.SistemaHandler.Health)
	router.POST("/api/login", c.AuthHandler.Login)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// protegidas por JWT
	auth := middleware.GinAuthMiddleware(c.Config.JWTSecret)

	router.POST("/api/logout", auth, c.AuthHandler.Logout)
	router.GET("/api/protected-test", auth, c.AuthHandler.ProtectedTest)

	router.GET("/candidatos-limpios", auth, c.EleccionHandler.CandidatosLimpios)
	router.GET("/votos-por-pacto", auth, c.EleccionHandler.VotosPorPacto)
	router.GET("/dhondt-actual", auth, c.EleccionHandler.DhondtActual)
	router.GET("/hemiciclo-nacional", auth, c.EleccionHandler.HemicicloNacional)

	api := router.Group("/api", auth)
	{
		api.GET("/hemiciclo-nacional/export", c.EleccionHandler.ExportarNacional)
		api.GET("/resultados/historial", c.SistemaHandler.Historial)
		api.GET("/resultados/historial/:id", c.SistemaHandler.HistorialDetalle)
		api.POST("/cache/clear", c.SistemaHandler.LimpiarCache)
	}

	return router
}
