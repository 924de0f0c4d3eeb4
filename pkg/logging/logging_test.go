package logging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/agentstation/teammap/pkg/logging"
)

func TestFromContext(t *testing.T) {
	t.Run("falls back to default", func(t *testing.T) {
		assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	})

	t.Run("returns stored logger", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		logging.FromContext(ctx).Info().Msg("hello")
		assert.True(t, tl.Contains(`"message":"hello"`))
	})
}

func TestContextFields(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithStage(ctx, "reconcile")
	ctx = logging.WithContributor(ctx, "u1")
	ctx = logging.WithRegistry(ctx, "users")
	ctx = logging.WithField(ctx, "cause", errors.New("boom"))

	logging.FromContext(ctx).Debug().Msg("decided")

	lines := tl.Lines()
	assert.Len(t, lines, 1)
	for _, want := range []string{`"stage":"reconcile"`, `"contributor_id":"u1"`, `"registry":"users"`, `"cause":"boom"`} {
		assert.Contains(t, lines[0], want)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"debug":   zerolog.DebugLevel,
		"WARNING": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, logging.ParseLevel(in), in)
	}
}

func TestNewLoggerFromConfig(t *testing.T) {
	old := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(old) })

	logger := logging.NewLoggerFromConfig(&logging.Config{Level: "warn", Output: "discard"})
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}
