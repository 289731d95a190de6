package design

import (
	"fmt"
	"math"
)

// Synthesize computes the tightest bound-respecting PD design for req.
// It fails only for non-positive inertia. Negative FnDes or ZetaDes are
// not rejected; outside the FnDes > 0, ZetaDes >= 0 envelope the output
// is undefined.
func Synthesize(req Request) (Result, error) {
	if req.Inertia <= 0 {
		return Result{}, fmt.Errorf("%w: J=%g", ErrInvalidInertia, req.Inertia)
	}

	j := req.Inertia
	omegaNDes := 2.0 * math.Pi * req.FnDes
	kpDes := j * omegaNDes * omegaNDes
	kdDes := 2.0 * req.ZetaDes * j * omegaNDes

	// Candidate bandwidths: the request itself plus the largest
	// bandwidth each active gain bound admits at the requested damping.
	// The minimum is the largest bandwidth satisfying every bound.
	omegaNActual := omegaNDes
	if req.KpMax.Active() {
		if w := math.Sqrt(req.KpMax.Value / j); w > 0 && w < omegaNActual {
			omegaNActual = w
		}
	}
	// A zero damping ratio zeroes Kd, so the Kd bound cannot bind.
	if req.KdMax.Active() && req.ZetaDes > 0 {
		if w := req.KdMax.Value / (2.0 * req.ZetaDes * j); w > 0 && w < omegaNActual {
			omegaNActual = w
		}
	}

	kpActual := j * omegaNActual * omegaNActual
	kdActual := 2.0 * req.ZetaDes * j * omegaNActual

	// Recomputed from the actual gains as a numerical cross-check; equals
	// ZetaDes whenever kpActual > 0.
	zetaActual := 0.0
	if kpActual > 0 {
		zetaActual = kdActual / (2.0 * math.Sqrt(j*kpActual))
	}

	trActual := math.Inf(1)
	tsActual := math.Inf(1)
	if omegaNActual > 0 {
		trActual = 1.8 / omegaNActual
		if zetaActual > 0 {
			tsActual = 4.0 / (zetaActual * omegaNActual)
		}
	}

	return Result{
		Inertia:      j,
		FnDes:        req.FnDes,
		ZetaDes:      req.ZetaDes,
		KpMax:        boundValue(req.KpMax),
		KdMax:        boundValue(req.KdMax),
		OmegaNDes:    omegaNDes,
		KpDes:        kpDes,
		KdDes:        kdDes,
		KpActual:     kpActual,
		KdActual:     kdActual,
		OmegaNActual: omegaNActual,
		FnActual:     omegaNActual / (2.0 * math.Pi),
		ZetaActual:   zetaActual,
		TrActual:     trActual,
		TsActual:     tsActual,
	}, nil
}

func boundValue(b Bound) float64 {
	if !b.Active() {
		return 0
	}
	return b.Value
}
