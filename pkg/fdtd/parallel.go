package fdtd

import "golang.org/x/sync/errgroup"

// minTileRows keeps tiles large enough that goroutine start-up stays cheap
// relative to the work in them.
const minTileRows = 8

// tile splits [0, n) into contiguous chunks and runs fn on each chunk in its
// own goroutine. It returns after every chunk finished, which is the barrier
// between update passes.
func tile(workers, n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if workers <= 1 || n < 2*minTileRows {
		fn(0, n)
		return
	}
	chunks := workers
	if most := n / minTileRows; chunks > most {
		chunks = most
	}
	size := (n + chunks - 1) / chunks
	var g errgroup.Group
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}
