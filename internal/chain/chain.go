// Package chain implements the indexed hash chain that every higher layer
// of this module builds on: H_i(x) = SHA256(i‖x), applied repeatedly.
// The per-step index salt means each position in the chain is effectively
// a distinct hash function, which is what defeats generic multi-target
// attacks against a plain iterated hash.
package chain

import (
	"encoding/binary"
	"runtime"
	"sync"

	"github.com/georgwiese/hbsig/internal/primitives"
)

// indexBytes encodes i as exactly 4 bytes, big-endian.
func indexBytes(i uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], i)
	return b[:]
}

// Chain applies x ← H(indexBytes(i) ‖ x) for i = start, start+1, ..., end-1
// and returns the result. With start == end, x is returned unchanged.
// Chain must not be called with start > end.
func Chain(x primitives.Hash, start, end uint32) primitives.Hash {
	if start > end {
		panic("chain: start must not exceed end")
	}
	buf := make([]byte, 4+primitives.Size)
	for i := start; i < end; i++ {
		copy(buf[:4], indexBytes(i))
		copy(buf[4:], x[:])
		x = primitives.SHA256(buf)
	}
	return x
}

// Batch applies Chain element-wise over xs, with out[i] depending only on
// xs[i] (never on any other element). Independent chains are fanned out
// across a bounded pool of goroutines; the work within a single chain
// remains strictly sequential.
func Batch(xs []primitives.Hash, start, end []uint32) []primitives.Hash {
	if len(start) != len(xs) || len(end) != len(xs) {
		panic("chain: start/end must have the same length as xs")
	}
	out := make([]primitives.Hash, len(xs))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(xs) {
		workers = len(xs)
	}
	if workers <= 1 {
		for i := range xs {
			out[i] = Chain(xs[i], start[i], end[i])
		}
		return out
	}

	var wg sync.WaitGroup
	jobs := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = Chain(xs[i], start[i], end[i])
			}
		}()
	}
	for i := range xs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return out
}
