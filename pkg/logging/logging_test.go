package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestLoggerCaptures(t *testing.T) {
	tl := NewTestLogger(t)

	tl.Info().Str("field", "nombre").Msg("field fused")

	assert.True(t, tl.Contains("field fused"))
	assert.True(t, tl.Contains(`"field":"nombre"`))
	assert.Len(t, tl.Lines(), 1)

	entries := tl.Entries()
	assert.Len(t, entries, 1)
	assert.Equal(t, "nombre", entries[0]["field"])
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))
	assert.Equal(t, Default(), FromContext(nil)) //nolint:staticcheck
}

func TestWithLoggerRoundTrip(t *testing.T) {
	tl := NewTestLogger(t)
	ctx := WithLogger(context.Background(), tl.Logger)

	FromContext(ctx).Info().Msg("through context")
	assert.True(t, tl.Contains("through context"))
}

func TestWithCase(t *testing.T) {
	tl := NewTestLogger(t)
	ctx := WithLogger(context.Background(), tl.Logger)
	ctx = WithCase(ctx, "A54/2023/ASEG")

	assert.Equal(t, "A54/2023/ASEG", Case(ctx))
	assert.Equal(t, "", Case(context.Background()))

	Ctx(ctx).Info().Msg("tagged")
	assert.True(t, tl.Contains(`"expediente":"A54/2023/ASEG"`))
}
