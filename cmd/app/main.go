// Package входная точка
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/parsecsion/north-sussex-judo-calculator/internal/config"
	"github.com/parsecsion/north-sussex-judo-calculator/internal/infrastructure/repository/memory"
	"github.com/parsecsion/north-sussex-judo-calculator/internal/seed"
	"github.com/parsecsion/north-sussex-judo-calculator/internal/transport/httpapi"
	"github.com/parsecsion/north-sussex-judo-calculator/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	cfg := config.Load()

	athleteRepo := memory.NewAthleteRepository()
	athleteSvc := usecase.NewAthleteService(athleteRepo, cfg.Registry.CaseInsensitiveNames)
	reportSvc := usecase.NewReportService(athleteSvc)

	if cfg.Seed.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		inputs := seed.Defaults()
		if cfg.Seed.File != "" {
			loaded, err := seed.LoadFile(cfg.Seed.File)
			if err != nil {
				log.Fatalf("failed to load seed file: %v", err)
			}
			inputs = loaded
		}
		seed.Apply(ctx, athleteSvc, inputs)
		cancel()
	}

	apiServer := httpapi.NewServer(athleteSvc, reportSvc)
	mux := http.NewServeMux()
	apiServer.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: mux,
	}

	// мутирующие эндпоинты рассчитаны на одного администратора клуба
	go func() {
		log.Printf("judo fee calculator HTTP server listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	log.Println("judo fee calculator initialized")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
}
