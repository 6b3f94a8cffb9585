// Package workers runs the account server's background jobs.
//
// A Worker starts its own goroutines in Run and releases them in Stop. The
// Workers aggregate starts and stops a fixed set of workers together.
package workers

// Worker is a background job with an explicit lifetime.
//
// Run must not block; Stop blocks until the job has finished.
type Worker interface {
	Run()
	Stop()
}

// Expirer is a cache that evicts expired entries while Start runs. Start
// blocks until Stop is called. Both *cache.ResponseCache and
// *cache.RevokedTokens satisfy it.
type Expirer interface {
	Start()
	Stop()
}
