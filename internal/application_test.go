package application

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-webapi/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-webapi/internal/config"
	"github.com/rocketscienceinc/tictactoe-webapi/internal/i18n"
)

func TestNewLedger(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory driver", func(t *testing.T) {
		ledger, closeLedger, err := newLedger(ctx, &config.Config{Ledger: config.Ledger{Driver: config.LedgerDriverMemory}})
		require.NoError(t, err)
		require.NotNil(t, ledger)
		assert.NoError(t, closeLedger())
	})

	t.Run("Redis driver", func(t *testing.T) {
		mr := miniredis.RunT(t)

		ledger, closeLedger, err := newLedger(ctx, &config.Config{
			Ledger: config.Ledger{Driver: config.LedgerDriverRedis},
			Redis:  config.Redis{Host: mr.Host(), Port: mr.Port(), LedgerKey: "test:moves"},
		})
		require.NoError(t, err)
		defer closeLedger()

		moves, err := ledger.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, moves)
	})

	t.Run("Redis driver without address", func(t *testing.T) {
		_, _, err := newLedger(ctx, &config.Config{Ledger: config.Ledger{Driver: config.LedgerDriverRedis}})

		assert.ErrorIs(t, err, ErrAddrNotFound)
	})

	t.Run("Unknown driver", func(t *testing.T) {
		_, _, err := newLedger(ctx, &config.Config{Ledger: config.Ledger{Driver: "postgres"}})

		assert.ErrorIs(t, err, apperror.ErrUnknownLedgerDriver)
	})
}

func TestNewGameUseCase(t *testing.T) {
	t.Run("Clears moves left by a previous process", func(t *testing.T) {
		// Given: a redis ledger that already holds a move
		ctx := context.Background()
		mr := miniredis.RunT(t)
		_, err := mr.RPush("test:moves", `{"symbol":"x","position":1}`)
		require.NoError(t, err)

		ledger, closeLedger, err := newLedger(ctx, &config.Config{
			Ledger: config.Ledger{Driver: config.LedgerDriverRedis},
			Redis:  config.Redis{Host: mr.Host(), Port: mr.Port(), LedgerKey: "test:moves"},
		})
		require.NoError(t, err)
		defer closeLedger()

		// When: the game is wired
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		gameUseCase, err := newGameUseCase(ctx, logger, ledger, i18n.MustCatalog("en"))
		require.NoError(t, err)

		// Then: the game starts empty
		moves, err := gameUseCase.Moves(ctx)
		require.NoError(t, err)
		assert.Empty(t, moves)
		assert.False(t, mr.Exists("test:moves"))
	})
}
