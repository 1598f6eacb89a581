package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderflow/config"
	httpapi "orderflow/web-svc/internal/api/http"
	"orderflow/web-svc/internal/apiclient"
	"orderflow/web-svc/internal/service"
	"orderflow/web-svc/internal/storage"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	api := apiclient.NewClient(apiclient.Config{
		BaseURL:    cfg.APIBaseURL,
		AuthScheme: cfg.APIAuthScheme,
	}, httpClient)

	var sessions service.SessionStore = storage.NewMemorySessionStore()
	if cfg.RedisAddr != "" {
		rdb := config.MustInitRedis(cfg.RedisAddr)
		defer rdb.Close()
		sessions = storage.NewRedisSessionStore(rdb, cfg.SessionTTL)
		log.Printf("[web-svc] sessions stored in redis at %s", cfg.RedisAddr)
	} else {
		log.Println("[web-svc] REDIS_HOST not set, sessions kept in memory")
	}

	var receipts service.ReceiptRepository
	if cfg.PostgresDSN != "" {
		db := config.MustInitPostgres(cfg.PostgresDSN)
		defer db.Close()
		repository := storage.NewPostgresReceiptRepository(db)
		if err := repository.EnsureSchema(); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		receipts = repository
	}

	var publisher service.EventPublisher
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.EventsTopic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	policy, err := routePolicy(cfg.RouteRoles)
	if err != nil {
		log.Fatal("Invalid ROUTE_ROLES:", err)
	}

	handler := newHandler(ctx, cfg, api, sessions, receipts, publisher, policy)
	handler.Media = httpapi.NewMediaProxy(cfg.APIBaseURL, httpClient)
	handler.Visitors.StartSweeper(ctx, time.Minute, cfg.VisitorIdle)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(handler, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("[web-svc] shutdown: %v", err)
		}
	}()

	httpapi.StartServer(server)
}

func routePolicy(value string) (*service.RoutePolicy, error) {
	if value == "" {
		return service.DefaultRoutePolicy(), nil
	}
	return service.ParseRoutePolicy(value)
}

func newHandler(ctx context.Context, cfg config.Config, api *apiclient.Client, sessions service.SessionStore,
	receipts service.ReceiptRepository, publisher service.EventPublisher, policy *service.RoutePolicy) *httpapi.Handler {
	feedback := service.NewFeedbackService(api, publisher)
	visitors := service.NewVisitorRegistry(
		func() *service.OrderLifecycle {
			return service.NewOrderLifecycle(service.LifecycleDeps{
				Orders:      api,
				Feedback:    feedback,
				Receipts:    receipts,
				Publisher:   publisher,
				ReviewDelay: cfg.ReviewDelay,
			})
		},
		func() *service.KitchenPoller {
			return service.NewKitchenPoller(api, cfg.KitchenPoll)
		},
	)

	handler := httpapi.NewHandler(
		visitors,
		service.NewMenuService(api),
		feedback,
		service.NewSessionManager(api, sessions),
		service.NewAdminService(api, receipts),
		service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL},
		policy,
	)
	handler.BaseContext = ctx
	handler.SecureCookies = cfg.SecureCookies
	return handler
}
