package model

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"

	"bank-marketing-service/internal/core/domain"
	"bank-marketing-service/internal/core/ports/output"
)

// Loader deserializes resolved bundles into immutable handles. Handles are
// cached by bundle path so repeated loads within one process are O(1)
// after the first.
type Loader struct {
	mu      sync.Mutex
	handles map[string]*LogregHandle
}

// NewLoader creates an empty loader.
func NewLoader() *Loader {
	return &Loader{handles: make(map[string]*LogregHandle)}
}

// Load validates the manifest sidecar before touching the pipeline file,
// so incompatible payloads fail with a clear error instead of an opaque
// parse failure.
func (l *Loader) Load(_ context.Context, bundle *domain.ArtifactBundle) (ports.ModelHandle, error) {
	l.mu.Lock()
	if handle, ok := l.handles[bundle.Path]; ok {
		l.mu.Unlock()
		return handle, nil
	}
	l.mu.Unlock()

	manifest, err := readManifest(bundle.Path)
	if err != nil {
		return nil, err
	}
	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("%w: format %q schema %d, want %q schema %d",
			domain.ErrModelCorrupt, manifest.Format, manifest.SchemaVersion,
			domain.SupportedFormat, domain.SupportedSchemaVersion)
	}

	handle, err := readPipeline(bundle.Path)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.handles[bundle.Path] = handle
	l.mu.Unlock()

	log.WithFields(log.Fields{
		"model_name": manifest.ModelName,
		"trained_at": manifest.TrainedAt,
		"path":       bundle.Path,
	}).Info("model pipeline loaded")

	return handle, nil
}

func readManifest(bundlePath string) (*domain.ModelManifest, error) {
	raw, err := os.ReadFile(filepath.Join(bundlePath, domain.ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("%w: manifest sidecar missing: %v", domain.ErrModelCorrupt, err)
	}
	var manifest domain.ModelManifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("%w: manifest unreadable: %v", domain.ErrModelCorrupt, err)
	}
	return &manifest, nil
}

func readPipeline(bundlePath string) (*LogregHandle, error) {
	raw, err := os.ReadFile(filepath.Join(bundlePath, domain.ModelFileName))
	if err != nil {
		return nil, fmt.Errorf("%w: pipeline file missing: %v", domain.ErrModelCorrupt, err)
	}
	var payload pipelinePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: pipeline unreadable: %v", domain.ErrModelCorrupt, err)
	}
	return newLogregHandle(payload)
}
