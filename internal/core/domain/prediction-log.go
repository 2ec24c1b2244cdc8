package domain

import (
	"time"

	"github.com/google/uuid"
)

// PredictionRecord is one served prediction, persisted for audit.
type PredictionRecord struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	RequestID   string    `json:"request_id"`
	Probability float64   `json:"probability"`
	Label       int       `json:"label"`
	Duration    int       `json:"duration"`
	Campaign    int       `json:"campaign"`
	Balance     int       `json:"balance"`
	Previous    int       `json:"previous"`
}

// NewPredictionRecord builds an audit record from a scored request.
func NewPredictionRecord(requestID string, req RawRequest, result PredictionResult) *PredictionRecord {
	return &PredictionRecord{
		ID:          uuid.New(),
		CreatedAt:   time.Now(),
		RequestID:   requestID,
		Probability: result.Probability,
		Label:       result.Label,
		Duration:    req.Duration,
		Campaign:    req.Campaign,
		Balance:     req.Balance,
		Previous:    req.Previous,
	}
}
