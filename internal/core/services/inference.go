package services

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"bank-marketing-service/internal/core/domain"
	"bank-marketing-service/internal/core/ports/output"
)

// InferenceConfig carries the serving knobs for one process.
type InferenceConfig struct {
	Locator   string
	TargetDir string
	Force     bool
	Threshold float64
}

// InferenceService owns the readiness state machine and answers prediction
// requests once a model handle is loaded. The handle is immutable, so
// Predict is safe from any number of concurrent callers and performs no
// blocking I/O.
type InferenceService struct {
	resolver ports.ArtifactResolver
	loader   ports.ModelLoader
	recorder *PredictionRecorder
	cfg      InferenceConfig

	mu       sync.Mutex
	state    domain.ReadinessState
	handle   ports.ModelHandle
	lastErr  error
	inflight chan struct{}
}

// NewInferenceService wires the resolver and loader. recorder may be nil
// when the audit log is disabled.
func NewInferenceService(resolver ports.ArtifactResolver, loader ports.ModelLoader, recorder *PredictionRecorder, cfg InferenceConfig) *InferenceService {
	return &InferenceService{
		resolver: resolver,
		loader:   loader,
		recorder: recorder,
		cfg:      cfg,
		state:    domain.StateUninitialized,
	}
}

// EnsureReady drives Uninitialized -> Loading -> Ready|Failed. Only one
// resolve+load attempt runs per process; concurrent callers during Loading
// wait for that attempt instead of starting another. Failed is terminal
// for the process lifetime.
func (s *InferenceService) EnsureReady(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case domain.StateReady:
		s.mu.Unlock()
		return nil
	case domain.StateFailed:
		err := s.lastErr
		s.mu.Unlock()
		return err
	case domain.StateLoading:
		done := s.inflight
		s.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.state == domain.StateReady {
			return nil
		}
		return s.lastErr
	}

	// Uninitialized: this caller performs the attempt.
	done := make(chan struct{})
	s.state = domain.StateLoading
	s.inflight = done
	s.mu.Unlock()

	handle, err := s.resolveAndLoad(ctx)

	s.mu.Lock()
	if err != nil {
		s.state = domain.StateFailed
		s.lastErr = err
		log.WithError(err).Error("model load failed, process will not serve predictions")
	} else {
		s.state = domain.StateReady
		s.handle = handle
		log.WithField("target_dir", s.cfg.TargetDir).Info("model ready")
	}
	s.mu.Unlock()
	close(done)
	return err
}

func (s *InferenceService) resolveAndLoad(ctx context.Context) (ports.ModelHandle, error) {
	bundle, err := s.resolver.Resolve(ctx, s.cfg.Locator, s.cfg.TargetDir, s.cfg.Force)
	if err != nil {
		return nil, err
	}
	return s.loader.Load(ctx, bundle)
}

// Predict scores one validated request. requestID is the collaborator's
// correlation id, carried into the audit log when one is wired.
func (s *InferenceService) Predict(req domain.RawRequest, requestID string) (domain.PredictionResult, error) {
	s.mu.Lock()
	ready := s.state == domain.StateReady
	handle := s.handle
	s.mu.Unlock()

	if !ready {
		return domain.PredictionResult{}, domain.ErrServiceUnavailable
	}

	features := EngineerFeatures(req)
	probability := clamp01(handle.Score(features))

	// Inclusive at the boundary: probability == threshold scores positive.
	label := 0
	if probability >= s.cfg.Threshold {
		label = 1
	}

	result := domain.PredictionResult{Probability: probability, Label: label}

	if s.recorder != nil {
		s.recorder.Enqueue(domain.NewPredictionRecord(requestID, req, result))
	}

	return result, nil
}

// Health reports the current readiness state.
func (s *InferenceService) Health() domain.ReadinessState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
