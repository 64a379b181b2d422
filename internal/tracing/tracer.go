// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "hsurvey-front"

type Tracer struct {
	tracer trace.Tracer
}

func (t *Tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}

// NewTracer initializes the global otel provider from the config and returns
// a tracer for it. Exporter preference is gRPC endpoint, then HTTP endpoint,
// then stdout.
func NewTracer(c *Config) *Tracer {
	t := new(Tracer)

	if !c.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer(tracerName)
		return t
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var exporter *otlptrace.Exporter
	var err error

	switch {
	case c.OtelGRPCEndpoint != "":
		exporter, err = otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(c.OtelGRPCEndpoint),
			otlptracegrpc.WithInsecure(),
		)
	case c.OtelHTTPEndpoint != "":
		exporter, err = otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(c.OtelHTTPEndpoint),
			otlptracehttp.WithInsecure(),
		)
	}

	if err != nil {
		c.Logger.Errorf("failed to create otlp exporter: %v", err)
	}

	var provider *sdktrace.TracerProvider
	if exporter != nil {
		provider = sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	} else {
		stdout, err := stdouttrace.New()
		if err != nil {
			c.Logger.Errorf("failed to create stdout exporter: %v", err)
			t.tracer = noop.NewTracerProvider().Tracer(tracerName)
			return t
		}
		provider = sdktrace.NewTracerProvider(sdktrace.WithBatcher(stdout))
	}

	otel.SetTracerProvider(provider)
	t.tracer = provider.Tracer(tracerName)

	return t
}

func NewNoopTracer() *Tracer {
	return &Tracer{
		tracer: noop.NewTracerProvider().Tracer(tracerName),
	}
}
