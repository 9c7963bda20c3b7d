package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/kioku-app/kioku/internal/content"
)

// VersionManifest describes the content versions currently available at the
// remote origin. Its version string is the sole authority on cache staleness.
type VersionManifest struct {
	Version     string                  `json:"version"`
	ReleaseDate string                  `json:"releaseDate"`
	Files       map[string]ManifestFile `json:"files"`
}

// ManifestFile is the download metadata for one payload file.
type ManifestFile struct {
	URL      string `json:"url"`
	Checksum string `json:"checksum"`
	Size     int64  `json:"size"`
}

// FileFor resolves the manifest entry for a content level.
func (m *VersionManifest) FileFor(level content.Level) (ManifestFile, error) {
	file, ok := m.Files[level.FileName()]
	if !ok {
		return ManifestFile{}, fmt.Errorf("%s: %w", level.FileName(), ErrInvalidManifestEntry)
	}
	return file, nil
}

// ManifestClient fetches the version manifest from the remote origin. The
// manifest is fetched fresh on every staleness check and never persisted.
type ManifestClient struct {
	client      *resty.Client
	manifestURL string
}

// NewManifestClient creates a client for the given manifest URL.
func NewManifestClient(manifestURL string) *ManifestClient {
	return &ManifestClient{
		client:      resty.New(),
		manifestURL: manifestURL,
	}
}

// Fetch downloads and decodes the manifest.
func (c *ManifestClient) Fetch(ctx context.Context) (*VersionManifest, error) {
	res, err := c.client.R().
		SetContext(ctx).
		Get(c.manifestURL)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w: %w", c.manifestURL, ErrTransport, err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status code %d: %w", c.manifestURL, res.StatusCode(), ErrTransport)
	}

	var manifest VersionManifest
	if err := json.Unmarshal(res.Body(), &manifest); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(manifest) > %w", err)
	}
	return &manifest, nil
}
