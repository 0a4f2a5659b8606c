package middleware

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/fieldwork-dev/fieldwork/pkg/event"
)

// Default tracer name for fieldwork applications.
const defaultTracerName = "fieldwork"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "fieldwork").
	TracerName string

	// Filter determines which events to trace.
	// Return true to trace the event, false to skip.
	// If nil, all events are traced.
	Filter func(evt event.Event) bool

	// AttributeExtractor extracts custom attributes per event.
	AttributeExtractor func(evt event.Event) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithEventFilter sets a filter function for events.
func WithEventFilter(filter func(evt event.Event) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(evt event.Event) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// OpenTelemetry creates middleware that traces every form event.
//
// The middleware creates a span per event named "fieldwork.<type>" with the
// form and field as attributes, records errors and sets span status. The
// tracer comes from the global OpenTelemetry tracer provider; configure it
// in main() before starting the server.
func OpenTelemetry(opts ...OTelOption) Middleware {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)

	return func(next Handler) Handler {
		return func(ctx context.Context, evt event.Event) error {
			if config.Filter != nil && !config.Filter(evt) {
				return next(ctx, evt)
			}

			attrs := []attribute.KeyValue{
				attribute.String("fieldwork.form", evt.Form),
				attribute.String("fieldwork.event_type", string(evt.Type)),
			}
			if evt.Field != "" {
				attrs = append(attrs, attribute.String("fieldwork.field", evt.Field))
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(evt)...)
			}

			spanCtx, span := config.tracer.Start(
				ctx,
				fmt.Sprintf("fieldwork.%s", evt.Type),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			err := next(spanCtx, evt)

			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetStatus(codes.Ok, "")
			}
			return err
		}
	}
}
