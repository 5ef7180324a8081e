package observability

import (
	"context"
	"fmt"
	"time"

	"github.com/prefeitura-rio/brado/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	serviceName    = "brado"
	serviceVersion = "v1.0.0"
)

var (
	tracerProvider *sdktrace.TracerProvider
)

// InitTracer installs the global tracer provider when tracing is enabled
func InitTracer() {
	cfg := config.AppConfig
	if cfg == nil || !cfg.TracingEnabled {
		Logger().Info("tracing is disabled")
		return
	}

	provider, err := newTracerProvider(context.Background(), cfg)
	if err != nil {
		Logger().Error("failed to initialize tracer", zap.Error(err))
		return
	}
	tracerProvider = provider

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	Logger().Info("tracer initialized",
		zap.String("endpoint", cfg.TracingEndpoint),
		zap.String("environment", cfg.Environment),
		zap.String("sampler", tracerSampler(cfg).Description()),
	)
}

func newTracerProvider(ctx context.Context, cfg *config.Config) (*sdktrace.TracerProvider, error) {
	client := otlptracegrpc.NewClient(
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.TracingEndpoint),
		otlptracegrpc.WithTimeout(exportTimeout(cfg)),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := tracerResource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, batchOptions(cfg)...),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(tracerSampler(cfg)),
	), nil
}

// tracerSampler keeps every span outside production. Production keeps
// TracingSampleRatio of the root spans and follows the parent otherwise.
func tracerSampler(cfg *config.Config) sdktrace.Sampler {
	if !cfg.IsProduction() {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.TracingSampleRatio))
}

func tracerResource(ctx context.Context, cfg *config.Config) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(serviceVersion),
			semconv.DeploymentEnvironmentKey.String(cfg.Environment),
		),
	)
}

// batchOptions flushes quickly in development so spans show up while debugging
func batchOptions(cfg *config.Config) []sdktrace.BatchSpanProcessorOption {
	if !cfg.IsProduction() {
		return []sdktrace.BatchSpanProcessorOption{
			sdktrace.WithMaxExportBatchSize(64),
			sdktrace.WithBatchTimeout(time.Second),
		}
	}
	return []sdktrace.BatchSpanProcessorOption{
		sdktrace.WithMaxExportBatchSize(512),
		sdktrace.WithBatchTimeout(10 * time.Second),
		sdktrace.WithMaxQueueSize(2048),
	}
}

func exportTimeout(cfg *config.Config) time.Duration {
	if cfg.IsProduction() {
		return 10 * time.Second
	}
	return 3 * time.Second
}

// ShutdownTracer flushes pending spans and releases the tracer provider
func ShutdownTracer() {
	if tracerProvider == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := tracerProvider.Shutdown(ctx); err != nil {
		Logger().Error("failed to shutdown tracer provider", zap.Error(err))
	}
	tracerProvider = nil
}
