package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/nglmq/imei/internal/config"
	"github.com/nglmq/imei/internal/http-server/handlers"
	"github.com/nglmq/imei/internal/middleware/logger"
	"net/http"
)

func Start() (http.Handler, error) {
	config.ParseFlags()

	if err := logger.Initialize(config.LogLevel); err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(logger.RequestLogger)
	r.Route("/api/imei", func(r chi.Router) {
		r.Post("/check", handlers.CheckHandle())
		r.Post("/check-batch", handlers.CheckBatchHandle())
		r.Get("/{number}", handlers.NumberCheckHandle())
	})

	return r, nil
}
