package domain

import "errors"

// ============================================================================
// Configuration Errors
// ============================================================================

var (
	ErrMissingModelLocator = errors.New("model locator is required (MODEL_URI)")
	ErrInvalidThreshold    = errors.New("decision threshold must be between 0 and 1")
)

// ============================================================================
// Artifact Resolution Errors
// ============================================================================

var (
	ErrArtifactUnavailable = errors.New("model artifact unavailable")
	ErrArtifactNotFound    = errors.New("model artifact not found at locator")
	ErrAccessDenied        = errors.New("access to model artifact denied (check token)")
)

// ============================================================================
// Model Loading Errors
// ============================================================================

var (
	ErrModelCorrupt = errors.New("model payload corrupt or version incompatible")
)

// ============================================================================
// Serving Errors
// ============================================================================

var (
	ErrServiceUnavailable = errors.New("model not ready, predictions unavailable")
)
