package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"bank-marketing-service/internal/core/domain"
	output "bank-marketing-service/internal/core/ports/output"
)

type predictionLogRepo struct {
	pool *pgxpool.Pool
}

// NewPredictionLogRepository creates a new PredictionLogRepository
func NewPredictionLogRepository(pool *pgxpool.Pool) output.PredictionLogRepository {
	return &predictionLogRepo{pool: pool}
}

func (r *predictionLogRepo) Create(ctx context.Context, record *domain.PredictionRecord) error {
	query := `
		INSERT INTO prediction_log
			(id, created_at, request_id, probability, label, duration, campaign, balance, previous)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		record.ID, record.CreatedAt, record.RequestID,
		record.Probability, record.Label,
		record.Duration, record.Campaign, record.Balance, record.Previous,
	)
	if err != nil {
		return fmt.Errorf("create prediction record: %w", err)
	}
	return nil
}
