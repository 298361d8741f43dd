package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tilous-backend/internal/entity"
)

const (
	playerKeyPrefix = "player:"
	playersSetKey   = "players"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Player, error)
	Clear(ctx context.Context) error
}

type dbPlayer struct {
	client *redis.Client
}

func NewPlayerRepository(client *redis.Client) PlayerRepository {
	return &dbPlayer{
		client: client,
	}
}

func (that *dbPlayer) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, playerKeyPrefix+player.ID, playerJSON, 0)
		pipe.SAdd(ctx, playersSetKey, player.ID)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set player: %w", err)
	}

	return nil
}

func (that *dbPlayer) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	response, err := that.client.Get(ctx, playerKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrPlayerNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by ID: %w", err)
	}

	var existingPlayer entity.Player
	if err = json.Unmarshal([]byte(response), &existingPlayer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &existingPlayer, nil
}

func (that *dbPlayer) DeleteByID(ctx context.Context, id string) error {
	var deleted *redis.IntCmd

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, playerKeyPrefix+id)
		pipe.SRem(ctx, playersSetKey, id)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	if deleted.Val() == 0 {
		return ErrPlayerNotFound
	}

	return nil
}

// List - all registered players ordered by id.
func (that *dbPlayer) List(ctx context.Context) ([]*entity.Player, error) {
	ids, err := that.client.Sort(ctx, playersSetKey, &redis.Sort{Alpha: true}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list player ids: %w", err)
	}

	players := make([]*entity.Player, 0, len(ids))
	for _, id := range ids {
		player, err := that.GetByID(ctx, id)
		if errors.Is(err, ErrPlayerNotFound) {
			continue
		}

		if err != nil {
			return nil, err
		}

		players = append(players, player)
	}

	return players, nil
}

// Clear - removes every player.
func (that *dbPlayer) Clear(ctx context.Context) error {
	ids, err := that.client.SMembers(ctx, playersSetKey).Result()
	if err != nil {
		return fmt.Errorf("failed to list player ids: %w", err)
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, playerKeyPrefix+id)
	}
	keys = append(keys, playersSetKey)

	if err = that.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear players: %w", err)
	}

	return nil
}
