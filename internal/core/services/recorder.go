package services

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"bank-marketing-service/internal/core/domain"
	"bank-marketing-service/internal/core/ports/output"
)

const recorderWriteTimeout = 5 * time.Second

// PredictionRecorder drains served predictions into the audit repository
// on a background goroutine so Predict never blocks on the database.
// Records are dropped when the buffer is full.
type PredictionRecorder struct {
	repo ports.PredictionLogRepository
	ch   chan *domain.PredictionRecord
	done chan struct{}
}

// NewPredictionRecorder creates a recorder with the given buffer size and
// starts its writer goroutine.
func NewPredictionRecorder(repo ports.PredictionLogRepository, buffer int) *PredictionRecorder {
	if buffer <= 0 {
		buffer = 256
	}
	r := &PredictionRecorder{
		repo: repo,
		ch:   make(chan *domain.PredictionRecord, buffer),
		done: make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *PredictionRecorder) run() {
	defer close(r.done)
	for record := range r.ch {
		ctx, cancel := context.WithTimeout(context.Background(), recorderWriteTimeout)
		if err := r.repo.Create(ctx, record); err != nil {
			log.WithError(err).Warn("prediction audit write failed")
		}
		cancel()
	}
}

// Enqueue hands a record to the writer without blocking the caller.
func (r *PredictionRecorder) Enqueue(record *domain.PredictionRecord) {
	select {
	case r.ch <- record:
	default:
		log.WithField("request_id", record.RequestID).Warn("prediction audit buffer full, dropping record")
	}
}

// Close stops accepting records and waits for queued writes to finish.
func (r *PredictionRecorder) Close() {
	close(r.ch)
	<-r.done
}
