package analysis

import (
	"context"
	"runtime"
	"sync"

	"github.com/san-kum/softviz/internal/transform"
)

// SweepParallel is Sweep with the temperatures split across workers. Points
// come back in the order of temps. workers <= 0 uses GOMAXPROCS.
func SweepParallel(ctx context.Context, values transform.Vector, cfg transform.Config, temps []float64, workers int) ([]SweepPoint, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, max(len(temps), 1))

	points := make([]SweepPoint, len(temps))
	errs := make([]error, len(temps))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				pts, err := Sweep(values, cfg, temps[idx:idx+1])
				if err != nil {
					errs[idx] = err
					continue
				}
				points[idx] = pts[0]
			}
		}()
	}

feed:
	for i := range temps {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}
