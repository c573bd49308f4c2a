// Package server arma y expone el servidor HTTP del servicio electoral:
// contenedor de dependencias, rutas Gin y ciclo de vida del servidor.
package server

import (
	"fmt"
	"log/slog"

	"electoral/internal/config"
	"electoral/internal/infrastructure/cache"
	"electoral/server/handlers"
	"electoral/server/services"
	"electoral/sources"
	"electoral/storage"
)

// Version versión del servicio, expuesta en health e índice
const Version = "1.0.0"

// Container contenedor de dependencias del servidor.
// Encapsula toda la inicialización: fuentes con cache, archivo de
// resultados, servicios y handlers.
type Container struct {
	Config *config.Config
	Datos  *config.DatosEleccion
	Logger *slog.Logger

	// Fuentes
	Provider *cache.ProviderConCache
	Archivo  *storage.ArchivoResultados

	// Servicios
	EleccionService  *services.EleccionService
	CandidatoService *services.CandidatoService
	AuthService      *services.AuthService
	ExportService    *services.ExportService

	// Handlers
	AuthHandler     *handlers.AuthHandler
	EleccionHandler *handlers.EleccionHandler
	SistemaHandler  *handlers.SistemaHandler
}

// NewContainer construye el contenedor completo desde la configuración
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	datos, err := config.LoadDatosEleccion(cfg.DataConfigPath)
	if err != nil {
		return nil, fmt.Errorf("error cargando los datos de la elección: %w", err)
	}

	httpProvider := sources.NewHTTPProvider(cfg)
	provider := cache.NewProviderConCache(httpProvider, cfg)

	archivo, err := storage.NewArchivoResultados(cfg.ArchivePath)
	if err != nil {
		return nil, fmt.Errorf("error abriendo el archivo de resultados: %w", err)
	}

	eleccion := services.NewEleccionService(provider, datos, cfg.FotoBaseURL, logger)
	candidatos := services.NewCandidatoService(eleccion, provider, datos)
	auth := services.NewAuthService(datos.Usuarios, cfg.JWTSecret, cfg.TokenExpiracion)
	export := services.NewExportService()

	c := &Container{
		Config: cfg,
		Datos:  datos,
		Logger: logger,

		Provider: provider,
		Archivo:  archivo,

		EleccionService:  eleccion,
		CandidatoService: candidatos,
		AuthService:      auth,
		ExportService:    export,
	}

	c.AuthHandler = handlers.NewAuthHandler(auth, logger)
	c.EleccionHandler = handlers.NewEleccionHandler(eleccion, candidatos, export, archivo, logger)
	c.SistemaHandler = handlers.NewSistemaHandler(archivo, provider, Version, logger)

	return c, nil
}

// Close libera los recursos del contenedor
func (c *Container) Close() error {
	if c.Archivo != nil {
		return c.Archivo.Close()
	}
	return nil
}
