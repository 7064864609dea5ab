package otel

import (
	"context"

	"github.com/chris-catignani/hotel-tracker-sub001/config"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc/credentials/insecure"
)

// Otel opens spans named "<scope>.<operation>" for every layer.
type Otel interface {
	NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope)
}

type tracer struct {
	provider oteltrace.TracerProvider
}

func (t *tracer) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope) {
	ctx, span := t.provider.Tracer(scopeName).Start(ctx, spanName)

	return ctx, NewScope(span)
}

// FromProvider wraps an existing provider, such as one backed by a test recorder.
func FromProvider(provider oteltrace.TracerProvider) Otel {
	return &tracer{provider: provider}
}

// New exports spans over OTLP/gRPC when EXTERNAL_OTEL_ENABLE is set and an
// endpoint is configured. Otherwise, or when the exporter cannot be built,
// spans go to a no-op provider.
func New(cfg *config.Config) Otel {
	settings := cfg.External.Otel

	if !settings.Enable || settings.Endpoint == "" {
		log.Info().Msg("OpenTelemetry exporter disabled, using no-op tracer")

		return FromProvider(noop.NewTracerProvider())
	}

	exporter, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(settings.Endpoint),
		otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create OTLP exporter, using no-op tracer")

		return FromProvider(noop.NewTracerProvider())
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(settings.SampleRatio))),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(cfg.App.Name),
			semconv.DeploymentEnvironmentKey.String(cfg.Server.Env),
		)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	log.Info().Str("endpoint", settings.Endpoint).Float64("sample_ratio", settings.SampleRatio).Msg("OpenTelemetry exporter initialized")

	return FromProvider(provider)
}
