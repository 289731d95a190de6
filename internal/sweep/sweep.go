// Package sweep evaluates the gain design across many operating points.
package sweep

import (
	"fmt"
	"sync"

	"github.com/encos-robotics/jointpd/internal/catalog"
	"github.com/encos-robotics/jointpd/internal/design"
)

// FrequencyResult holds one design per requested frequency, in grid
// order, plus the highest requested frequency that needed no clamping.
type FrequencyResult struct {
	Results      []design.Result
	MaxUnlimited float64 // 0 when every point was clamped
}

// Frequency runs the design at n evenly spaced frequencies between
// fnMin and fnMax Hz, keeping the rest of the base request fixed. Each
// point is independent, so the grid is evaluated in parallel.
func Frequency(base design.Request, fnMin, fnMax float64, n int) (*FrequencyResult, error) {
	if n < 2 {
		return nil, fmt.Errorf("sweep: need at least 2 points, got %d", n)
	}
	if fnMax <= fnMin {
		return nil, fmt.Errorf("sweep: empty frequency range [%g, %g]", fnMin, fnMax)
	}

	results := make([]design.Result, n)
	errs := make([]error, n)
	step := (fnMax - fnMin) / float64(n-1)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := base
			req.FnDes = fnMin + float64(idx)*step
			results[idx], errs[idx] = design.Synthesize(req)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := &FrequencyResult{Results: results}
	for _, res := range results {
		if !res.Limited() && res.FnDes > out.MaxUnlimited {
			out.MaxUnlimited = res.FnDes
		}
	}
	return out, nil
}

// Catalog runs the same performance target against every actuator in
// the catalog, in sorted model order.
func Catalog(cat *catalog.Catalog, fn, zeta float64, kpMax, kdMax design.Bound) ([]design.Result, error) {
	models := cat.Models()
	results := make([]design.Result, len(models))
	errs := make([]error, len(models))

	var wg sync.WaitGroup
	for i, model := range models {
		spec, _ := cat.Get(model)

		wg.Add(1)
		go func(idx int, j float64) {
			defer wg.Done()

			results[idx], errs[idx] = design.Synthesize(design.Request{
				Inertia: j,
				FnDes:   fn,
				ZetaDes: zeta,
				KpMax:   kpMax,
				KdMax:   kdMax,
			})
		}(i, spec.Inertia)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
