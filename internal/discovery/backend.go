package discovery

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tillworks/receiptd/internal/logging"
)

// DefaultStringReadTimeout bounds a single USB string-descriptor read so one
// unresponsive device cannot stall a whole pass.
const DefaultStringReadTimeout = 100 * time.Millisecond

// Options tunes a discovery pass.
type Options struct {
	// IncludeSerial enables the generic serial-node scan. Serial namespaces
	// are shared with many non-printer peripherals, so some deployments turn
	// this off.
	IncludeSerial bool

	// StringReadTimeout bounds per-device USB string-descriptor reads.
	// Zero means DefaultStringReadTimeout.
	StringReadTimeout time.Duration
}

// DefaultOptions returns the options used when the caller does not care.
func DefaultOptions() Options {
	return Options{
		IncludeSerial:     true,
		StringReadTimeout: DefaultStringReadTimeout,
	}
}

func (o Options) stringReadTimeout() time.Duration {
	if o.StringReadTimeout <= 0 {
		return DefaultStringReadTimeout
	}
	return o.StringReadTimeout
}

// Backend is one platform's discovery strategy. Scan returns raw candidates
// plus a property index for enrichment (nil where the platform has no
// property service). A Scan error means the enumeration layer itself failed
// and aborts the pass; per-device trouble must be handled inside the backend.
type Backend interface {
	// Name identifies the backend in logs.
	Name() string

	Scan(ctx context.Context, opts Options) ([]Candidate, PropertyIndex, error)
}

// nullBackend serves hosts with no supported enumeration strategy. An empty
// result is deliberately not an error.
type nullBackend struct{}

func (nullBackend) Name() string { return "null" }

func (nullBackend) Scan(context.Context, Options) ([]Candidate, PropertyIndex, error) {
	return nil, nil, nil
}

// Provider is the discovery facade handed to callers. It binds exactly one
// backend for the host platform at construction time and is safe for
// concurrent use: every Discover call is an independent, stateless pass.
type Provider struct {
	backend Backend
	opts    Options
}

// NewProvider returns a provider using the backend for the current operating
// system, or the null backend on unsupported hosts.
func NewProvider(opts Options) *Provider {
	return &Provider{backend: newPlatformBackend(), opts: opts}
}

// NewProviderWithBackend returns a provider over an explicit backend.
func NewProviderWithBackend(b Backend, opts Options) *Provider {
	return &Provider{backend: b, opts: opts}
}

// Discover runs one full discovery pass: scan, enrich, fuse, rank. It blocks
// on hardware I/O and should be dispatched off latency-sensitive goroutines.
// An error means the backend's enumeration layer failed; no partial list is
// returned in that case.
func (p *Provider) Discover(ctx context.Context) ([]Candidate, error) {
	start := time.Now()

	raw, index, err := p.backend.Scan(ctx, p.opts)
	if err != nil {
		return nil, err
	}

	enrich(raw, index)
	ranked := fuse(raw)

	logging.Info("discovery pass complete",
		zap.String("backend", p.backend.Name()),
		zap.Int("raw_candidates", len(raw)),
		zap.Int("ranked_candidates", len(ranked)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return ranked, nil
}
