package commands

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodapp/config"
	httpapi "foodapp/food-svc/internal/api/http"
	"foodapp/food-svc/internal/service"
	"foodapp/food-svc/internal/storage"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var (
	serveAddr   string
	seedOnStart bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Apply the schema, seed an empty catalog and serve the HTTP API until
SIGINT or SIGTERM. In-flight requests get a short grace period on shutdown.

Examples:
  food-svc serve                 # listen on :$PORT
  food-svc serve --addr :8080    # explicit listen address
  food-svc serve --seed=false    # skip catalog seeding`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default \":$PORT\")")
	serveCmd.Flags().BoolVar(&seedOnStart, "seed", true, "Seed the sample catalog when it is empty")
}

func runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(contextOrBackground(parent), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	secret, err := cfg.TokenSecret()
	if err != nil {
		return err
	}

	db := config.MustInitPostgres(cfg.DatabaseURL)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	var (
		cache      service.MenuCache
		popularity service.PopularityReader
		stats      service.StatsReader
		publisher  service.OrderPublisher
	)
	if cfg.RedisAddr != "" {
		rdb := config.MustInitRedis(cfg.RedisAddr)
		defer rdb.Close()
		cache = storage.NewRedisMenuCache(rdb, cfg.MenuCacheTTL)
		analytics := storage.NewRedisAnalytics(rdb)
		popularity, stats = analytics, analytics
	} else {
		log.Println("[food-svc] REDIS_HOST not set, menu cache and popular foods disabled, stats read from postgres")
	}
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.OrdersTopic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.Println("[food-svc] KAFKA_BROKER not set, order events disabled")
	}

	catalog := service.NewCatalogService(repo, cache, popularity)
	if seedOnStart {
		if _, err := catalog.Seed(ctx); err != nil {
			return err
		}
	}

	handler := httpapi.NewHandler(
		service.NewAuthService(repo, service.NewTokenIssuer(secret)),
		catalog,
		service.NewOrderService(repo, repo, publisher, service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}),
		service.NewAnalyticsService(stats, repo),
	)

	addr := serveAddr
	if addr == "" {
		addr = ":" + cfg.Port
	}
	srv := httpapi.NewServer(addr, httpapi.NewRouter(handler, cfg.AllowedOrigins))

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[food-svc] starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("[food-svc] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
