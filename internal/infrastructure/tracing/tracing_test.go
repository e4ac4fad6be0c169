package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

func TestInitTracing_WithoutCollector(t *testing.T) {
	tp, err := InitTracing("", "shopping-cart-service")
	require.NoError(t, err)

	ctx, span := otel.Tracer("test").Start(context.Background(), "span")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	carrier := map[string]string{}
	otel.GetTextMapPropagator().Inject(ctx, propagation.MapCarrier(carrier))
	assert.NotEmpty(t, carrier["traceparent"])

	require.NoError(t, tp.Shutdown(context.Background()))
}
