package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tilous-backend/internal/entity"
)

// ResultRepository - archive of finished games.
type ResultRepository interface {
	Save(ctx context.Context, result *entity.GameResult) error
	List(ctx context.Context, limit int) ([]*entity.GameResult, error)
}

type resultRepository struct {
	conn *sql.DB
}

func NewResultRepository(conn *sql.DB) ResultRepository {
	return &resultRepository{
		conn: conn,
	}
}

func (that *resultRepository) Save(ctx context.Context, result *entity.GameResult) error {
	query := `INSERT OR IGNORE INTO results (id, winner, board_size, players, finished_at) VALUES (?, ?, ?, ?, ?)`

	players, err := json.Marshal(result.Players)
	if err != nil {
		return fmt.Errorf("can't marshal players: %w", err)
	}

	_, err = that.conn.ExecContext(ctx, query,
		result.ID, result.Winner.String(), result.BoardSize, string(players), result.FinishedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("can't save result: %w", err)
	}

	return nil
}

// List - the latest results first.
func (that *resultRepository) List(ctx context.Context, limit int) ([]*entity.GameResult, error) {
	query := `SELECT id, winner, board_size, players, finished_at FROM results ORDER BY finished_at DESC, id LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list results: %w", err)
	}
	defer rows.Close()

	var results []*entity.GameResult
	for rows.Next() {
		var (
			result     entity.GameResult
			winner     string
			players    string
			finishedAt int64
		)

		if err = rows.Scan(&result.ID, &winner, &result.BoardSize, &players, &finishedAt); err != nil {
			return nil, fmt.Errorf("can't scan result: %w", err)
		}

		if result.Winner, err = entity.ParsePlayerID(winner); err != nil {
			return nil, fmt.Errorf("can't parse winner: %w", err)
		}

		if err = json.Unmarshal([]byte(players), &result.Players); err != nil {
			return nil, fmt.Errorf("can't unmarshal players: %w", err)
		}

		result.FinishedAt = time.UnixMilli(finishedAt).UTC()
		results = append(results, &result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't iterate results: %w", err)
	}

	return results, nil
}
