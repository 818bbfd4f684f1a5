package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/mercadofake/store/internal/dal/jsonfile"
	"github.com/mercadofake/store/internal/dal/rabbitmq"
	orderrepo "github.com/mercadofake/store/internal/dal/repositories/order/jsonfile"
	outboxrepo "github.com/mercadofake/store/internal/dal/repositories/outbox/jsonfile"
	productrepo "github.com/mercadofake/store/internal/dal/repositories/product/jsonfile"
	"github.com/mercadofake/store/internal/jaeger"
	"github.com/mercadofake/store/internal/service/services/ordersvc"
	"github.com/mercadofake/store/internal/service/services/productsvc"
	httptransport "github.com/mercadofake/store/internal/transport/http"
	outboxworker "github.com/mercadofake/store/internal/worker/outbox"
)

// App represents the application.
type App struct {
	productSvc     *productsvc.ProductService
	orderSvc       *ordersvc.OrderService
	transport      *httptransport.HTTPTransport
	rabbitClient   *rabbitmq.Client
	outboxWorker   *outboxworker.Worker
	tracerProvider *sdktrace.TracerProvider
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	var tracerProvider *sdktrace.TracerProvider
	if viper.GetBool("tracing.enabled") {
		exp := jaeger.MustNewJaeger()
		tracerProvider = sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
		otel.SetTracerProvider(tracerProvider)
	}

	storageClient := jsonfile.MustNewClient()

	productRepo := productrepo.NewProductRepository(storageClient)
	orderRepo := orderrepo.NewOrderRepository(storageClient)

	productSvc := productsvc.MustNewProductService(
		productsvc.WithProductRepository(productRepo),
	)

	var (
		rabbitClient *rabbitmq.Client
		worker       *outboxworker.Worker
		orderSvc     *ordersvc.OrderService
	)
	if viper.GetBool("rabbitmq.enabled") {
		rabbitClient = rabbitmq.MustNewClient()

		if _, err := rabbitClient.DeclareQueue(rabbitmq.DeclareQueueConfig{
			Name:    viper.GetString("rabbitmq.orders.queue"),
			Durable: true,
		}); err != nil {
			panic("failed to declare orders queue: " + err.Error())
		}

		outboxRepo := outboxrepo.NewOutboxRepository(storageClient)
		worker = outboxworker.NewWorker(outboxRepo, rabbitClient)

		orderSvc = ordersvc.MustNewOrderService(
			ordersvc.WithOrderRepository(orderRepo),
			ordersvc.WithProductRepository(productRepo),
			ordersvc.WithOutboxRepository(outboxRepo),
		)
	} else {
		orderSvc = ordersvc.MustNewOrderService(
			ordersvc.WithOrderRepository(orderRepo),
			ordersvc.WithProductRepository(productRepo),
		)
	}

	transport := httptransport.NewHTTPTransport(productSvc, orderSvc)
	transport.RegisterRoutes()

	return &App{
		productSvc:     productSvc,
		orderSvc:       orderSvc,
		transport:      transport,
		rabbitClient:   rabbitClient,
		outboxWorker:   worker,
		tracerProvider: tracerProvider,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	// Create a channel to receive OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()

	if a.outboxWorker != nil {
		go a.outboxWorker.Start(workerCtx)
	}

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	if a.outboxWorker != nil {
		a.outboxWorker.Stop()
	}

	if a.rabbitClient != nil {
		if err := a.rabbitClient.Close(); err != nil {
			slog.Error("RabbitMQ connection close error", "error", err)
		} else {
			slog.Info("RabbitMQ connection closed gracefully")
		}
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			slog.Error("Tracer provider shutdown error", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
}
