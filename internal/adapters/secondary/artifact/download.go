package artifact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/cenkalti/backoff/v4"

	"bank-marketing-service/internal/core/domain"
)

const clientAgent = "bank-marketing-service/1.0"

// download streams one GET attempt into destPath. Permanent failures are
// wrapped so the retry policy short-circuits; 5xx and transport errors are
// returned transient.
func (r *Resolver) download(ctx context.Context, rawURL, destPath string) (retErr error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("create fetch request: %w", err))
	}
	req.Header.Set("User-Agent", clientAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch artifact: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to the body copy
	case resp.StatusCode == http.StatusNotFound:
		return backoff.Permanent(fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, redact(rawURL)))
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return backoff.Permanent(fmt.Errorf("%w: status %d from %s", domain.ErrAccessDenied, resp.StatusCode, redact(rawURL)))
	case resp.StatusCode >= 500:
		return fmt.Errorf("transient upstream error (status %d)", resp.StatusCode)
	default:
		return backoff.Permanent(fmt.Errorf("%w: unexpected status %d from %s", domain.ErrArtifactUnavailable, resp.StatusCode, redact(rawURL)))
	}

	out, err := os.Create(destPath)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("create download file: %w", err))
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && retErr == nil {
			retErr = fmt.Errorf("close download file: %w", cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("stream artifact body: %w", err)
	}
	return nil
}
