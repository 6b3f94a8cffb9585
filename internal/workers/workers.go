package workers

import (
	"sync"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers creates a janitor for every expiring cache held by services.
func NewWorkers(services *service.Services, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if services.ResponseCache != nil {
		ws.workers = append(ws.workers, NewCacheJanitor("response-cache", services.ResponseCache, logger))
	}
	if services.RevokedTokens != nil {
		ws.workers = append(ws.workers, NewCacheJanitor("revoked-tokens", services.RevokedTokens, logger))
	}

	return ws
}

// Add appends worker to the set started by Run.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// CacheJanitor drives the expiration loop of a ttlcache-backed cache.
type CacheJanitor struct {
	name  string
	cache Expirer

	mu      sync.Mutex
	running bool
	done    chan struct{}

	logger *logger.Logger
}

func NewCacheJanitor(name string, cache Expirer, logger *logger.Logger) *CacheJanitor {
	return &CacheJanitor{name: name, cache: cache, logger: logger}
}

// Run starts the expiration loop in its own goroutine. A second Run while
// already running is a no-op.
func (j *CacheJanitor) Run() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.running {
		return
	}
	j.running = true
	j.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		j.cache.Start()
	}(j.done)

	j.logger.Debug().Str("worker", j.name).Msg("cache janitor started")
}

// Stop ends the expiration loop and waits for it to return.
func (j *CacheJanitor) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.running {
		return
	}

	j.cache.Stop()
	<-j.done
	j.running = false

	j.logger.Debug().Str("worker", j.name).Msg("cache janitor stopped")
}
