package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/lwalden/chartview-backend/internal/bootstrap"
	"github.com/lwalden/chartview-backend/internal/config"
	"github.com/lwalden/chartview-backend/internal/handlers"
	"github.com/lwalden/chartview-backend/internal/response"
	"github.com/lwalden/chartview-backend/internal/router"
	"github.com/lwalden/chartview-backend/internal/services"
	"github.com/lwalden/chartview-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	cstore := store.NewChartStore(bs.Firestore)
	sstore := store.NewStatusStore(bs.Firestore)

	// services
	cserv := services.NewChartService(cstore, cfg.RenderTimeout)
	sserv := services.NewStatusService(sstore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.ChartSvc = cserv
	deps.StatusSvc = sserv

	// router
	r := router.NewRouter(deps)
	bs.Log.Info("server listening", "port", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
