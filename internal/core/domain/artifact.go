package domain

import "time"

// ============================================================================
// Value Objects
// ============================================================================

// LocatorKind classifies a configured artifact locator by content.
type LocatorKind string

const (
	LocatorLocalPath LocatorKind = "LOCAL_PATH"
	LocatorRemoteURL LocatorKind = "REMOTE_URL"
)

// IsValid checks if the kind is valid
func (k LocatorKind) IsValid() bool {
	return k == LocatorLocalPath || k == LocatorRemoteURL
}

// ============================================================================
// Entities
// ============================================================================

// ArtifactBundle is a resolved, on-disk model artifact directory holding
// the serialized pipeline plus its manifest sidecar.
type ArtifactBundle struct {
	Path       string      `json:"path"`
	Source     LocatorKind `json:"source"`
	ResolvedAt time.Time   `json:"resolved_at"`
}

// ManifestFileName is the format/version sidecar consulted before the
// pipeline itself is deserialized.
const ManifestFileName = "manifest.json"

// ModelFileName holds the serialized pipeline parameters.
const ModelFileName = "model.json"

// SupportedFormat and SupportedSchemaVersion pin the payload layout this
// build can deserialize. Anything else fails ErrModelCorrupt.
const (
	SupportedFormat        = "bank-marketing/logreg"
	SupportedSchemaVersion = 1
)

// ModelManifest describes the serialized pipeline in the bundle.
type ModelManifest struct {
	Format        string    `json:"format"`
	SchemaVersion int       `json:"schema_version"`
	ModelName     string    `json:"model_name"`
	TrainedAt     time.Time `json:"trained_at"`
}

// Validate checks the manifest against what this build can load.
func (m ModelManifest) Validate() error {
	if m.Format != SupportedFormat || m.SchemaVersion != SupportedSchemaVersion {
		return ErrModelCorrupt
	}
	return nil
}
