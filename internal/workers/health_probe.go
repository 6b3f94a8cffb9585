package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
)

// Pinger checks that a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ServingReporter publishes whether the account collection can be served.
type ServingReporter interface {
	SetAccountsServing(serving bool)
}

// HealthProbe pings the database on a fixed interval and reports the result
// to the gRPC health service. Only status changes are logged.
type HealthProbe struct {
	pinger   Pinger
	reporter ServingReporter
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	logger *logger.Logger
}

func NewHealthProbe(pinger Pinger, reporter ServingReporter, interval time.Duration, logger *logger.Logger) *HealthProbe {
	return &HealthProbe{
		pinger:   pinger,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

// Run probes once immediately, then every interval until Stop.
func (p *HealthProbe) Run() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.loop(ctx, p.done)
}

func (p *HealthProbe) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel == nil {
		return
	}

	p.cancel()
	<-p.done
	p.cancel = nil
}

func (p *HealthProbe) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	serving := true
	for {
		serving = p.probe(ctx, serving)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (p *HealthProbe) probe(ctx context.Context, wasServing bool) bool {
	pingCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	err := p.pinger.Ping(pingCtx)
	if ctx.Err() != nil {
		return wasServing
	}

	serving := err == nil
	p.reporter.SetAccountsServing(serving)

	if serving != wasServing {
		if err != nil {
			p.logger.Err(err).Msg("database unreachable, accounts not serving")
		} else {
			p.logger.Info().Msg("database reachable again, accounts serving")
		}
	}

	return serving
}
