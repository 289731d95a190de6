package sweep

import (
	"math"
	"testing"

	"github.com/encos-robotics/jointpd/internal/catalog"
	"github.com/encos-robotics/jointpd/internal/design"
)

func TestFrequencyGrid(t *testing.T) {
	base := design.Request{
		Inertia: 0.0231825,
		ZetaDes: 1.5,
		KpMax:   design.Limit(500),
		KdMax:   design.Limit(5),
	}

	res, err := Frequency(base, 2.0, 20.0, 10)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(res.Results) != 10 {
		t.Fatalf("expected 10 points, got %d", len(res.Results))
	}
	if res.Results[0].FnDes != 2.0 {
		t.Errorf("expected first point at 2 Hz, got %g", res.Results[0].FnDes)
	}
	if res.Results[9].FnDes != 20.0 {
		t.Errorf("expected last point at 20 Hz, got %g", res.Results[9].FnDes)
	}

	// The Kd cap binds near 11.44 Hz on this joint: low points pass
	// through, high points clamp to the same achieved frequency.
	if res.Results[0].Limited() {
		t.Error("2 Hz point should be unconstrained")
	}
	last := res.Results[9]
	if !last.Limited() {
		t.Error("20 Hz point should be clamped")
	}
	if math.Abs(last.FnActual-11.4422) > 1e-3 {
		t.Errorf("expected clamped fn 11.4422, got %g", last.FnActual)
	}
	if res.MaxUnlimited <= 0 || res.MaxUnlimited >= 11.4422 {
		t.Errorf("unexpected max unlimited frequency: %g", res.MaxUnlimited)
	}
}

func TestFrequencyMonotoneAchieved(t *testing.T) {
	base := design.Request{
		Inertia: 0.0596423,
		ZetaDes: 1.0,
		KpMax:   design.Limit(200),
		KdMax:   design.Limit(3),
	}

	res, err := Frequency(base, 1.0, 40.0, 40)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	for i := 1; i < len(res.Results); i++ {
		if res.Results[i].FnActual+1e-9 < res.Results[i-1].FnActual {
			t.Errorf("achieved frequency decreased at point %d", i)
		}
	}
}

func TestFrequencyBadArgs(t *testing.T) {
	base := design.Request{Inertia: 0.04, ZetaDes: 1.0}

	if _, err := Frequency(base, 1, 10, 1); err == nil {
		t.Error("expected error for single-point grid")
	}
	if _, err := Frequency(base, 10, 10, 5); err == nil {
		t.Error("expected error for empty range")
	}
}

func TestFrequencyInvalidInertia(t *testing.T) {
	base := design.Request{Inertia: 0, ZetaDes: 1.0}
	if _, err := Frequency(base, 1, 10, 4); err == nil {
		t.Error("expected invalid inertia error")
	}
}

func TestCatalogComparison(t *testing.T) {
	cat := catalog.Default()

	results, err := Catalog(cat, 10.0, 1.2, design.Limit(500), design.Limit(5))
	if err != nil {
		t.Fatalf("catalog sweep failed: %v", err)
	}

	if len(results) != cat.Len() {
		t.Fatalf("expected %d results, got %d", cat.Len(), len(results))
	}

	models := cat.Models()
	for i, res := range results {
		spec, _ := cat.Get(models[i])
		if res.Inertia != spec.Inertia {
			t.Errorf("result %d inertia mismatch: %g vs %g", i, res.Inertia, spec.Inertia)
		}
		if res.FnDes != 10.0 {
			t.Errorf("result %d wrong target frequency: %g", i, res.FnDes)
		}
	}

	// Heavier joints clamp at lower bandwidth under the same Kd cap.
	var prevInertia, prevFn float64
	for i, res := range results {
		if i > 0 && res.Inertia > prevInertia && res.FnActual > prevFn+1e-9 {
			t.Errorf("heavier joint %s achieved higher frequency", models[i])
		}
		prevInertia, prevFn = res.Inertia, res.FnActual
	}
}
