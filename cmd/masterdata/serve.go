package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	masterdatagrpc "semaphore/masterdata/internal/grpc"
	internalhttp "semaphore/masterdata/internal/http"
	"semaphore/masterdata/internal/jobs"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the gRPC health endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(parent context.Context) error {
	cfg := a.cfg
	log := a.log

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("db connection failed")
		return err
	}
	defer st.Close()

	if cfg.AutoMigrate {
		if err := st.migrate(ctx); err != nil {
			log.Error().Err(err).Msg("migration failed")
			return err
		}
	}
	st.withCache(ctx, cfg, log)

	server := internalhttp.NewServer(cfg, st.repo, log)
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("masterdata http listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var grpcServer *masterdatagrpc.Server
	if cfg.GRPCAddr != "" {
		grpcServer, err = masterdatagrpc.NewServer(cfg.ServiceAuthToken, log)
		if err != nil {
			return err
		}
		listener, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			log.Error().Err(err).Msg("grpc listen error")
			return err
		}
		go func() {
			log.Info().Str("addr", cfg.GRPCAddr).Msg("masterdata grpc listening")
			if err := grpcServer.GRPC.Serve(listener); err != nil {
				errCh <- err
			}
		}()
		jobs.StartStoreProbe(ctx, st.repo, cfg.HealthProbeInterval, grpcServer.SetServing, log)
	}

	select {
	case <-ctx.Done():
	case err = <-errCh:
		log.Error().Err(err).Msg("server error")
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Error().Err(shutdownErr).Msg("shutdown error")
	}
	if grpcServer != nil {
		grpcServer.Stop()
	}
	log.Info().Msg("masterdata stopped")
	return err
}
