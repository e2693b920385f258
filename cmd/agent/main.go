package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"weather-agent/internal/agent"
	"weather-agent/internal/app"
	"weather-agent/internal/httputil"
)

type chatRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

type chatResponse struct {
	ID     string `json:"id"`
	Answer string `json:"answer"`
	Intent string `json:"intent"`
}

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	r := httputil.NewRouter(deps.Log)

	r.Get("/", rootHandler(deps))
	r.Post("/api/chat", chatHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", deps.Config.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Log.Info("agent listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		deps.Log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := deps.Cache.Close(); err != nil {
			deps.Log.Warn("cache close failed", "err", err)
		}
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("server error", "err", err)
		os.Exit(1)
	}
}

func rootHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Weather agent is running. Send POST requests to /api/chat.",
		})
	}
}

func chatHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		ans, err := deps.Agent.Handle(r.Context(), req.Text)
		if err != nil {
			// Only blank input reaches here; provider failures come back
			// as answer text.
			if errors.Is(err, agent.ErrEmptyQuery) {
				httputil.Fail(deps.Log, w, "query must not be empty", err, http.StatusBadRequest)
				return
			}
			httputil.Fail(deps.Log, w, "routing failed", err, http.StatusInternalServerError)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, chatResponse{
			ID:     ans.ID,
			Answer: ans.Text,
			Intent: string(ans.Intent),
		})
	}
}
