package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/porquinho-server/internal/handlers/v1/advice"
	"github.com/carson-networks/porquinho-server/internal/handlers/v1/dashboard"
	"github.com/carson-networks/porquinho-server/internal/handlers/v1/projection"
	"github.com/carson-networks/porquinho-server/internal/handlers/v1/record"
	"github.com/carson-networks/porquinho-server/internal/handlers/v1/status"
	"github.com/carson-networks/porquinho-server/internal/logging"
	"github.com/carson-networks/porquinho-server/internal/operator"
	"github.com/carson-networks/porquinho-server/internal/service"
	"github.com/carson-networks/porquinho-server/internal/storage"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Storage  *storage.Storage
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

// Handler builds the mux with the status route and every /v1 operation.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Porquinho API", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	record.NewListRecordsHandler(r.Service.Record).Register(api)
	record.NewGetRecordHandler(r.Service.Record).Register(api)
	record.NewSaveRecordHandler(r.Operator).Register(api)
	record.NewDeleteRecordHandler(r.Operator).Register(api)
	record.NewSyncRecordsHandler(r.Operator).Register(api)
	dashboard.NewHandler(r.Service.Dashboard).Register(api)
	projection.NewSimulateHandler(r.Service.Projection).Register(api)
	projection.NewRateHandler(r.Service.Projection).Register(api)
	advice.NewHandler(r.Service.Advice).Register(api)

	return mux
}

// Serve blocks until ctx is cancelled or the listener fails.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(90) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
