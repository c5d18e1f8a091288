package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("returns the attached logger", func(t *testing.T) {
		lg := New()
		ctx := context.WithValue(context.Background(), ContextKey, lg)

		require.Same(t, lg, FromContext(ctx))
	})

	t.Run("bare context still yields a usable logger", func(t *testing.T) {
		lg := FromContext(context.Background())

		require.NotNil(t, lg)
		lg.Debugf("usable without panicking: %s", "ok")
	})
}
