package artifact

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"

	"bank-marketing-service/internal/core/domain"
)

const (
	defaultFetchTimeout = 60 * time.Second
	defaultMaxAttempts  = 3
)

// Resolver turns a configured locator into a local artifact directory.
// Classification is by content: an existing filesystem path wins over URL
// parsing, and only http/https schemes are accepted as remote.
type Resolver struct {
	client       *http.Client
	fetchTimeout time.Duration
	maxAttempts  int
}

// NewResolver creates a resolver. Zero values fall back to the defaults
// (60s overall fetch budget, 3 attempts).
func NewResolver(fetchTimeout time.Duration, maxAttempts int) *Resolver {
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &Resolver{
		// No client-level timeout: the per-resolution context carries the
		// overall budget across retries.
		client:       &http.Client{},
		fetchTimeout: fetchTimeout,
		maxAttempts:  maxAttempts,
	}
}

// Resolve classifies the locator, fetches/extracts as needed, and places
// the bundle at targetDir with an atomic rename. When targetDir already
// exists and force is unset this is a no-op fast path.
func (r *Resolver) Resolve(ctx context.Context, locator, targetDir string, force bool) (*domain.ArtifactBundle, error) {
	if locator == "" {
		return nil, fmt.Errorf("%w: empty locator", domain.ErrArtifactUnavailable)
	}

	kind, ok := classify(locator)
	if !ok {
		return nil, fmt.Errorf("%w: unrecognized locator %q", domain.ErrArtifactUnavailable, redact(locator))
	}

	if !force {
		if info, err := os.Stat(targetDir); err == nil && info.IsDir() {
			log.WithField("target_dir", targetDir).Debug("artifact already resolved, skipping fetch")
			return &domain.ArtifactBundle{Path: targetDir, Source: kind, ResolvedAt: time.Now()}, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(targetDir), 0o755); err != nil {
		return nil, fmt.Errorf("prepare target parent: %w", err)
	}

	var err error
	switch kind {
	case domain.LocatorLocalPath:
		err = r.resolveLocal(locator, targetDir, force)
	case domain.LocatorRemoteURL:
		err = r.resolveRemote(ctx, locator, targetDir, force)
	}
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"locator":    redact(locator),
		"target_dir": targetDir,
		"source":     string(kind),
	}).Info("artifact resolved")

	return &domain.ArtifactBundle{Path: targetDir, Source: kind, ResolvedAt: time.Now()}, nil
}

// classify tags the locator by content. Existing paths take precedence so
// a relative directory that happens to parse as a URL is still local.
func classify(locator string) (domain.LocatorKind, bool) {
	if _, err := os.Stat(locator); err == nil {
		return domain.LocatorLocalPath, true
	}
	if u, err := url.Parse(locator); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return domain.LocatorRemoteURL, true
	}
	return "", false
}

func (r *Resolver) resolveLocal(source, targetDir string, force bool) error {
	info, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, source)
	}

	if info.IsDir() {
		staging, err := copyTreeToStaging(source, targetDir)
		if err != nil {
			return err
		}
		return placeAtomically(staging, targetDir, force)
	}

	isArchive, err := sniffZip(source)
	if err != nil {
		return fmt.Errorf("sniff local artifact: %w", err)
	}
	if !isArchive {
		return fmt.Errorf("%w: %s is neither a directory nor a zip archive", domain.ErrArtifactUnavailable, source)
	}
	return extractToTarget(source, targetDir, force)
}

func (r *Resolver) resolveRemote(ctx context.Context, rawURL, targetDir string, force bool) error {
	ctx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	staging, err := os.MkdirTemp(filepath.Dir(targetDir), ".fetch-")
	if err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}
	defer os.RemoveAll(staging)

	archivePath := filepath.Join(staging, "artifact.bin")

	operation := func() error {
		return r.download(ctx, rawURL, archivePath)
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(r.maxAttempts-1)),
		ctx,
	)
	notify := func(err error, wait time.Duration) {
		log.WithError(err).WithField("retry_in", wait.String()).Warn("artifact fetch failed, retrying")
	}

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		if errors.Is(err, domain.ErrArtifactNotFound) || errors.Is(err, domain.ErrAccessDenied) {
			return err
		}
		return fmt.Errorf("%w: fetch %s: %v", domain.ErrArtifactUnavailable, redact(rawURL), err)
	}

	isArchive, err := sniffZip(archivePath)
	if err != nil {
		return fmt.Errorf("sniff downloaded artifact: %w", err)
	}
	if !isArchive {
		return fmt.Errorf("%w: %s did not yield a zip archive", domain.ErrArtifactUnavailable, redact(rawURL))
	}

	return extractToTarget(archivePath, targetDir, force)
}

// redact drops the query component so time-limited access tokens never
// reach logs or error messages.
func redact(locator string) string {
	u, err := url.Parse(locator)
	if err != nil || u.Scheme == "" {
		return locator
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
