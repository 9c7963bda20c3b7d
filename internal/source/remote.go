package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"

	"github.com/kioku-app/kioku/internal/content"
)

const downloadAttempts = 3

// RemoteProvider downloads content from the remote origin, guarded by the
// version manifest. It is the lowest-priority provider, tried only when the
// bundled snapshot and the cache cannot answer.
type RemoteProvider struct {
	manifest *ManifestClient
	client   *resty.Client
	prober   Prober
}

// NewRemoteProvider creates a provider fetching the manifest from manifestURL.
func NewRemoteProvider(manifestURL string, prober Prober) *RemoteProvider {
	return &RemoteProvider{
		manifest: NewManifestClient(manifestURL),
		client:   resty.New(),
		prober:   prober,
	}
}

func (p *RemoteProvider) Name() string {
	return "remote"
}

func (p *RemoteProvider) Priority() int {
	return PriorityRemote
}

// HasData reports whether the origin is reachable. No content download happens
// at this stage.
func (p *RemoteProvider) HasData(ctx context.Context, _ content.Level) bool {
	return p.prober.Reachable(ctx)
}

// Manifest fetches the current version manifest.
func (p *RemoteProvider) Manifest(ctx context.Context) (*VersionManifest, error) {
	return p.manifest.Fetch(ctx)
}

// LoadContent fetches the manifest, downloads the payload it references for
// the level, and parses it. A checksum mismatch is logged as a warning, not a
// failure: the checksum is advisory, not a security boundary.
func (p *RemoteProvider) LoadContent(ctx context.Context, level content.Level) (*Result, error) {
	manifest, err := p.manifest.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("manifest.Fetch > %w", err)
	}

	file, err := manifest.FileFor(level)
	if err != nil {
		return nil, err
	}

	data, err := p.Download(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("download(%s) > %w", file.URL, err)
	}

	payload := content.Payload{Level: level, Version: manifest.Version, Data: data}
	parsed, err := content.Parse(payload)
	if err != nil {
		return nil, fmt.Errorf("content.Parse > %w", err)
	}
	parsed.Version = manifest.Version
	return &Result{Content: parsed, Payload: payload}, nil
}

// Download fetches a manifest entry with bounded retries and verifies its
// checksum advisorily.
func (p *RemoteProvider) Download(ctx context.Context, file ManifestFile) ([]byte, error) {
	var data []byte
	if err := retry.Do(
		func() error {
			res, err := p.client.R().
				SetContext(ctx).
				Get(file.URL)
			if err != nil {
				return fmt.Errorf("GET %s: %w: %w", file.URL, ErrTransport, err)
			}
			if res.StatusCode() != http.StatusOK {
				err := fmt.Errorf("GET %s: status code %d: %w", file.URL, res.StatusCode(), ErrTransport)
				if res.StatusCode() >= 400 && res.StatusCode() < 500 {
					return retry.Unrecoverable(err)
				}
				return err
			}
			data = res.Body()
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(downloadAttempts),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
	); err != nil {
		return nil, err
	}

	verifyChecksum(file, data)
	return data, nil
}

// verifyChecksum warns on mismatch. Availability wins over strict integrity here.
func verifyChecksum(file ManifestFile, data []byte) {
	if file.Checksum == "" {
		return
	}
	sum := sha256.Sum256(data)
	actual := hex.EncodeToString(sum[:])
	if actual != file.Checksum {
		slog.Default().Warn("content checksum mismatch",
			slog.String("url", file.URL),
			slog.String("expected", file.Checksum),
			slog.String("actual", actual))
	}
}
