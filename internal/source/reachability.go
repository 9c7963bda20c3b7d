package source

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// Prober is the light reachability signal consumed by RemoteProvider.HasData.
// No content-server round trip is required; any response from the origin counts.
type Prober interface {
	Reachable(ctx context.Context) bool
}

// HTTPProber probes the remote origin with a cheap HEAD request.
type HTTPProber struct {
	client   *resty.Client
	probeURL string
}

// NewHTTPProber creates a prober against the given URL, typically the manifest URL.
func NewHTTPProber(probeURL string) *HTTPProber {
	client := resty.New()
	client.SetTimeout(3 * time.Second)
	return &HTTPProber{client: client, probeURL: probeURL}
}

// Reachable reports whether the origin answered at all. Any HTTP status counts
// as reachable; only a transport error does not.
func (p *HTTPProber) Reachable(ctx context.Context) bool {
	_, err := p.client.R().
		SetContext(ctx).
		Head(p.probeURL)
	return err == nil
}
