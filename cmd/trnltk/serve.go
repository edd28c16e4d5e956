package main

import (
	"fmt"
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aretw0/trnltk/internal/cli"
	httpAdapter "github.com/aretw0/trnltk/pkg/adapters/http"
	"github.com/aretw0/trnltk/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves GET /parse?word=, POST /parse/batch, GET /healthz and Prometheus
metrics on GET /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}
		timeout, _ := cmd.Flags().GetDuration("timeout")
		origins, _ := cmd.Flags().GetStringSlice("cors-origin")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics, err := observability.NewMetrics(reg)
		if err != nil {
			return err
		}

		rt, err := cli.NewRuntime(ctx, cfg, logger, metrics.Hooks().Merge(observability.LogHooks(logger)))
		if err != nil {
			return err
		}
		defer rt.Close()

		opts := []httpAdapter.Option{
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
			httpAdapter.WithTimeout(timeout),
		}
		if len(origins) > 0 {
			opts = append(opts, httpAdapter.WithAllowedOrigins(origins...))
		}

		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
		if err != nil {
			return fmt.Errorf("failed to listen: %w", err)
		}
		logger.Info("starting trnltk server", "graph", cfg.Graph, "cache", cfg.Cache.Kind)
		return cli.Serve(ctx, ln, httpAdapter.NewHandler(rt.Parser, opts...), logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().Duration("timeout", 30*time.Second, "Per request parse timeout")
	serveCmd.Flags().StringSlice("cors-origin", nil, "Allowed CORS origins (default any)")
}
