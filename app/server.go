package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/angelofallars/hyperinvoice/internal/service"
	"github.com/angelofallars/hyperinvoice/internal/session"
	"github.com/go-chi/chi/v5"
)

type App struct {
	host string
	port int

	slog   *slog.Logger
	router chi.Router

	svcInvoice service.Invoice
	forms      *session.Store
}

func New(slog *slog.Logger, svcInvoice service.Invoice, forms *session.Store) *App {
	app := &App{
		host: "localhost",
		port: 3000,

		router: chi.NewRouter(),
		slog:   slog,

		svcInvoice: svcInvoice,
		forms:      forms,
	}

	app.RegisterRoutes()

	return app
}

func (a *App) WithHost(host string) *App {
	a.host = host
	return a
}

func (a *App) WithPort(port uint) *App {
	a.port = int(port)
	return a
}

// Handler exposes the router, mostly for tests.
func (a *App) Handler() http.Handler {
	return a.router
}

// Serve listens until ctx is done, then shuts down gracefully.
func (a *App) Serve(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.host, a.port)
	server := http.Server{
		Addr:    addr,
		Handler: a.router,

		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go a.forms.Run(ctx)

	errc := make(chan error, 1)
	go func() {
		a.slog.Info("server started listening", "addr", addr)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a.slog.Info("server shutting down")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
