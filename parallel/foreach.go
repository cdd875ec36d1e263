// Package parallel contains the bounded parallel ForEach() and Count() used by the trainer.
package parallel

import "sync"
import "sync/atomic"

// ForEach executes a for loop with a limited number of concurrent goroutines.
// Each goroutine processes one integer, from 0 to length.
func ForEach(length, limit int, body func(i int)) {
	if limit <= 0 {
		limit = 1
	}
	if length <= 0 {
		return
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	wg.Add(length)

	for i := 0; i < length; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			body(i)
		}(i)
	}

	wg.Wait()
}

// Count runs pred for each integer from 0 to length on at most limit goroutines
// and returns how many times it reported true.
func Count(length, limit int, pred func(i int) bool) int {
	var n atomic.Int64
	ForEach(length, limit, func(i int) {
		if pred(i) {
			n.Add(1)
		}
	})
	return int(n.Load())
}
