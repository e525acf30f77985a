package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-webapi/internal/entity"
)

const DefaultLedgerKey = "tictactoe:moves"

type redisLedger struct {
	client *redis.Client
	key    string
}

// NewRedisLedger - stores the ledger as a redis list under key.
func NewRedisLedger(client *redis.Client, key string) MoveLedger {
	if key == "" {
		key = DefaultLedgerKey
	}

	return &redisLedger{
		client: client,
		key:    key,
	}
}

func (that *redisLedger) Append(ctx context.Context, move entity.Move) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	if err = that.client.RPush(ctx, that.key, moveJSON).Err(); err != nil {
		return fmt.Errorf("failed to append move: %w", err)
	}

	return nil
}

func (that *redisLedger) All(ctx context.Context) ([]entity.Move, error) {
	response, err := that.client.LRange(ctx, that.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read moves: %w", err)
	}

	moves := make([]entity.Move, 0, len(response))
	for _, item := range response {
		var move entity.Move
		if err = json.Unmarshal([]byte(item), &move); err != nil {
			return nil, fmt.Errorf("failed to unmarshal move: %w", err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

func (that *redisLedger) Reset(ctx context.Context) error {
	if err := that.client.Del(ctx, that.key).Err(); err != nil {
		return fmt.Errorf("failed to delete moves: %w", err)
	}

	return nil
}
