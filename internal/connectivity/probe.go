// Package connectivity reports whether the process currently has network
// reachability. The assistant uses this to pick between offline, online, and
// hybrid answering paths.
package connectivity

import (
	"context"
	"net"
	"sync"
	"time"
)

// Probe reports network reachability.
type Probe interface {
	Online(ctx context.Context) bool
}

// DialProbe checks reachability by opening a TCP connection to a well-known
// address. Results are cached for TTL so the hot path does not dial on every
// question.
type DialProbe struct {
	Address string        // host:port to dial, default 1.1.1.1:443
	Timeout time.Duration // per-dial timeout, default 2s
	TTL     time.Duration // cache lifetime, default 30s

	mu      sync.Mutex
	online  bool
	checked time.Time
}

// NewDialProbe returns a probe with the default address and timings.
func NewDialProbe() *DialProbe {
	return &DialProbe{
		Address: "1.1.1.1:443",
		Timeout: 2 * time.Second,
		TTL:     30 * time.Second,
	}
}

// Online reports whether the last probe within TTL succeeded, dialing anew
// when the cached result has expired.
func (p *DialProbe) Online(ctx context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.checked) < p.TTL {
		return p.online
	}

	dialer := net.Dialer{Timeout: p.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", p.Address)
	if err == nil {
		conn.Close()
	}
	p.online = err == nil
	p.checked = time.Now()
	return p.online
}

// Static is a Probe with a fixed answer, used in tests and for forcing
// offline mode from configuration.
type Static bool

func (s Static) Online(ctx context.Context) bool { return bool(s) }
