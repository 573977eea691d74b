// Ejecuta el backend de desarrollo en memoria. Útil para probar la CLI y el
// SDK sin el backend productivo: datos sembrados, JWT reales, sin persistencia.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tu-usuario/admin-revendedores/internal/infrastructure/stub"
	"github.com/tu-usuario/admin-revendedores/pkg/config"
	"github.com/tu-usuario/admin-revendedores/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	log.Info().
		Str("env", cfg.App.Env).
		Str("addr", cfg.Stub.Addr()).
		Msg("iniciando backend de desarrollo")

	server := stub.New(stub.Config{
		JWTSecret:  cfg.Stub.JWTSecret,
		JWTIssuer:  cfg.Stub.JWTIssuer,
		Expiration: cfg.Stub.Expiration,
	})

	// Apagado ordenado ante SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info().Msg("apagando backend de desarrollo...")
		if err := server.App().ShutdownWithTimeout(5 * time.Second); err != nil {
			log.Error().Err(err).Msg("apagado con error")
		}
	}()

	if err := server.App().Listen(cfg.Stub.Addr()); err != nil {
		log.Fatal().Err(err).Msg("servidor detenido con error")
	}
	log.Info().Msg("backend detenido")
}
