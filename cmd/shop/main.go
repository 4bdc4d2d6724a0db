package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dwikikusuma/shopfront/internal/auth"

	cartapp "github.com/dwikikusuma/shopfront/internal/cart/app"
	cartgrpc "github.com/dwikikusuma/shopfront/internal/cart/grpc"

	catalogapp "github.com/dwikikusuma/shopfront/internal/catalog/app"
	cgrpc "github.com/dwikikusuma/shopfront/internal/catalog/grpc"

	checkoutapp "github.com/dwikikusuma/shopfront/internal/checkout/app"
	checkoutgrpc "github.com/dwikikusuma/shopfront/internal/checkout/grpc"
	checkoutadapter "github.com/dwikikusuma/shopfront/internal/checkout/infra/adapter"

	orderapp "github.com/dwikikusuma/shopfront/internal/order/app"
	ogrpc "github.com/dwikikusuma/shopfront/internal/order/grpc"

	"github.com/dwikikusuma/shopfront/internal/httpapi"
	"github.com/dwikikusuma/shopfront/internal/messaging"
	"github.com/dwikikusuma/shopfront/internal/messaging/kafka"
	"github.com/dwikikusuma/shopfront/internal/store/memory"
	userapp "github.com/dwikikusuma/shopfront/internal/user/app"

	"github.com/dwikikusuma/shopfront/pkg/config"
	"github.com/dwikikusuma/shopfront/pkg/grpcx"
	"github.com/dwikikusuma/shopfront/pkg/logger"
	"github.com/dwikikusuma/shopfront/pkg/shutdown"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
)

func main() {
	if err := run(); err != nil {
		slog.Error("shop exited", slog.Any("err", err))
		os.Exit(1)
	}
}

// run returns instead of exiting so deferred cleanup always runs.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(logger.Options{
		Service:   "shop",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: true,
	})

	// prices go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store := memory.New()

	// Catalog
	catalogSvc := catalogapp.NewService(store.Products())
	if cfg.SeedCatalog {
		n, err := catalogSvc.Seed(ctx, catalogapp.DemoProducts())
		if err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		log.Info("catalog seeded", slog.Int("products", n))
	}

	// Cart
	cartSvc := cartapp.NewService(store.Carts(), store.Products())

	// Events
	publisher, closePublisher := newPublisher(cfg, log)
	defer closePublisher()

	// Checkout (adapters)
	cartReader := checkoutadapter.NewCartServiceReader(cartSvc)
	catalogReader := checkoutadapter.NewCatalogServiceReader(catalogSvc)
	checkoutSvc := checkoutapp.NewService(cartReader, catalogReader, store, publisher, log, checkoutapp.Options{
		Currency:               cfg.Currency,
		Scale:                  cfg.CurrencyScale,
		MaxConcurrent:          cfg.QuoteConcurrency,
		DefaultShippingAddress: cfg.DefaultShippingAddress,
		DefaultPaymentMethod:   cfg.DefaultPaymentMethod,
		OrdersTopic:            cfg.OrdersTopic,
		PublishTimeout:         cfg.PublishTimeout,
	})

	orderSvc := orderapp.NewService(store.Orders())

	tokens := auth.NewJWT(cfg.JWTSecret, cfg.TokenTTL)
	userSvc := userapp.NewService(store.Users(), cartSvc, tokens, 0)

	// gRPC
	lis, err := net.Listen("tcp", cfg.GRPCAddr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPCAddr(), err)
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpcx.RecoveryInterceptor(log),
		grpcx.LoggingInterceptor(log),
	))
	cgrpc.Register(grpcServer, cgrpc.NewServer(catalogSvc))
	cartgrpc.Register(grpcServer, cartgrpc.NewServer(cartSvc))
	checkoutgrpc.Register(grpcServer, checkoutgrpc.NewServer(checkoutSvc, cfg.CurrencyScale))
	ogrpc.Register(grpcServer, ogrpc.NewServer(orderSvc, cfg.CurrencyScale))

	// HTTP
	router := httpapi.NewRouter(httpapi.Deps{
		Catalog:       catalogSvc,
		Cart:          cartSvc,
		Checkout:      checkoutSvc,
		Orders:        orderSvc,
		Users:         userSvc,
		Tokens:        tokens,
		CurrencyScale: cfg.CurrencyScale,
		Log:           log,
		CORSOrigins:   cfg.CORSOrigins,
	})
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("grpc starting", slog.String("addr", cfg.GRPCAddr()))
		if err := grpcServer.Serve(lis); err != nil {
			log.Error("grpc serve error", slog.Any("err", err))
			cancel()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", cfg.HTTPAddr()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdown.Run(log, cfg.ShutdownTimeout,
		shutdown.Stopper{
			Name:     "http",
			Graceful: httpServer.Shutdown,
			Force:    func() { _ = httpServer.Close() },
		},
		shutdown.Stopper{
			Name: "grpc",
			Graceful: func(context.Context) error {
				grpcServer.GracefulStop()
				return nil
			},
			Force: grpcServer.Stop,
		},
	)

	wg.Wait()
	log.Info("bye")
	return nil
}

// newPublisher returns the Kafka broker when brokers are configured and a
// logging publisher otherwise.
func newPublisher(cfg config.Config, log *slog.Logger) (messaging.Publisher, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Info("no kafka brokers configured, order events are logged only")
		return messaging.NewLogPublisher(log), func() {}
	}

	broker := kafka.NewKafkaBroker(cfg.KafkaBrokers)
	log.Info("publishing order events to kafka",
		slog.Any("brokers", cfg.KafkaBrokers),
		slog.String("topic", cfg.OrdersTopic),
	)
	return broker, func() {
		if err := broker.Close(); err != nil {
			log.Error("kafka close failed", slog.Any("err", err))
		}
	}
}
