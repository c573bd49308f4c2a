// @title API Electoral D'Hondt
// @version 1.0
// @description Servicio de reconciliación de fuentes electorales y cálculo de escaños D'Hondt en dos niveles, con simulación de fusión de pactos y agregación nacional.

// @contact.name Soporte API
// @contact.email soporte@example.com

// @host localhost:5000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Token JWT con prefijo "Bearer "

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "electoral/docs"
	"electoral/internal/config"
	"electoral/server"
)

func main() {
	log.Println("Iniciando el servicio electoral...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error cargando la configuración: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuración inválida: %v", err)
	}
	log.Printf("Configuración cargada. Puerto: %s", cfg.Port)

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("No se pudo crear el servidor: %v", err)
	}

	// apagado con gracia ante SIGINT/SIGTERM
	done := make(chan struct{})
	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Error en el apagado: %v", err)
		}
		close(done)
	}()

	if err := srv.Start(); err != nil {
		log.Fatalf("Error del servidor: %v", err)
	}
	<-done

	log.Println("Servicio detenido")
}
