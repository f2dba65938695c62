package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const requestIDHeader = "X-Request-Id"

var (
	tracer = otel.Tracer("server")
	meter  = otel.Meter("server")
)

// RequestID assigns each request a uuid, echoed in the response header,
// unless the client already sent one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(requestIDHeader, id)
		c.Set("request_id", id)
		c.Next()
	}
}

// Observe wraps each request in a span and counts it.
func Observe() gin.HandlerFunc {
	counter, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("Number of HTTP requests handled."),
	)
	if err != nil {
		slog.Error("failed to create request counter", slog.String("error", err.Error()))
	}

	return func(c *gin.Context) {
		// The matched route is only known after the handler chain ran,
		// so the span starts with the raw path.
		ctx, span := tracer.Start(c.Request.Context(), "server.request", trace.WithAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.target", c.Request.URL.Path),
			attribute.String("request.id", c.GetString("request_id")),
		))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(
			attribute.String("http.route", c.FullPath()),
			attribute.Int("http.status_code", status),
		)
		if status >= 500 {
			span.SetStatus(codes.Error, "request failed")
		}
		if counter != nil {
			counter.Add(ctx, 1,
				metric.WithAttributes(
					attribute.String("http.route", c.FullPath()),
					attribute.Int("http.status_code", status),
				),
			)
		}
	}
}
