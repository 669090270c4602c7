package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/vecmcp/internal/metrics"
	chiTransport "github.com/kailas-cloud/vecmcp/internal/transport/chi"
	mcpTransport "github.com/kailas-cloud/vecmcp/internal/transport/mcp"
	healthuc "github.com/kailas-cloud/vecmcp/internal/usecase/health"
	"github.com/kailas-cloud/vecmcp/internal/version"
)

var flagTransport string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server",
	Long: `Run the MCP server over stdio (default) or streamable HTTP.

stdio is what MCP hosts spawn; logs go to stderr so stdout stays a clean
protocol stream. The http transport serves the same tools at /mcp with
bearer-token auth, health endpoints and Prometheus metrics.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&flagTransport, "transport", "", "override server.transport: stdio, http")
}

func runServe(cmd *cobra.Command, _ []string) error {
	st, err := buildStack()
	if err != nil {
		return err
	}
	defer st.Close()

	metrics.Register()

	server := mcpTransport.New(st.resolver, st.searcher, mcpTransport.Config{
		DefaultMaxResults: st.cfg.Search.DefaultMaxResults,
		CharacterLimit:    st.cfg.Search.CharacterLimit,
	}, st.logger)

	transport := st.cfg.Server.Transport
	if flagTransport != "" {
		transport = flagTransport
	}

	st.logger.Info("Starting vecmcp",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("transport", transport),
		zap.String("base_url", st.cfg.LiteLLM.BaseURL),
		zap.String("cache_driver", st.cfg.Cache.Driver),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch transport {
	case "stdio":
		return serveStdio(ctx, st, server)
	case "http":
		return serveHTTP(ctx, st, server)
	default:
		return fmt.Errorf("unknown transport %q: want stdio or http", transport)
	}
}

func serveStdio(ctx context.Context, st *stack, server *mcpTransport.Server) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(gCtx)
	})

	// Optional sidecar so stdio deployments still expose health and metrics.
	if port := st.cfg.Server.MetricsPort; port > 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})

		sidecar := &http.Server{
			Addr:        fmt.Sprintf(":%d", port),
			Handler:     mux,
			ReadTimeout: 10 * time.Second,
		}

		g.Go(func() error {
			st.logger.Info("Starting metrics sidecar", zap.String("addr", sidecar.Addr))
			if err := sidecar.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return sidecar.Shutdown(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	st.logger.Info("Server stopped gracefully")
	return nil
}

func serveHTTP(ctx context.Context, st *stack, server *mcpTransport.Server) error {
	healthSvc := healthuc.New(st.catalog, st.cachePinger())
	api := chiTransport.NewServer(server.Handler(), healthSvc, st.cfg.Auth.APIKeys, st.logger)

	addr := fmt.Sprintf(":%d", st.cfg.Server.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.Router(),
		ReadTimeout:  time.Duration(st.cfg.Server.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(st.cfg.Server.HTTP.WriteTimeoutSec) * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		st.logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		st.logger.Info("Received shutdown signal")
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), time.Duration(st.cfg.Server.HTTP.ShutdownSec)*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	st.logger.Info("Server stopped gracefully")
	return nil
}
