package worker

// cacheOperations writes the mempool snapshot to its cache file on every
// tick. A snapshot racing a concurrent submission is corrected by the next
// tick, the cache is best effort by nature.
func (w *Worker) cacheOperations() {
	w.evHandler("worker: cacheOperations: G started")
	defer w.evHandler("worker: cacheOperations: G completed")

	for {
		select {
		case <-w.ticker.C:
			if !w.isShutdown() {
				w.runCacheOperation()
			}

		case <-w.shut:
			w.evHandler("worker: cacheOperations: received shut signal")
			return
		}
	}
}

// runCacheOperation takes a snapshot of the mempool and writes it to disk.
func (w *Worker) runCacheOperation() {
	w.evHandler("worker: runCacheOperation: started")
	defer w.evHandler("worker: runCacheOperation: completed")

	if err := w.state.CacheMempool(); err != nil {
		w.evHandler("worker: runCacheOperation: WARNING: %s", err)
	}
}
