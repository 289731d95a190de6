package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/encos-robotics/jointpd/internal/design"
)

func testResult(t *testing.T) design.Result {
	t.Helper()
	res, err := design.Synthesize(design.Request{
		Inertia: 0.0231825,
		FnDes:   12.0,
		ZetaDes: 1.5,
		KpMax:   design.Limit(500),
		KdMax:   design.Limit(5),
	})
	if err != nil {
		t.Fatalf("synthesize failed: %v", err)
	}
	return res
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("4310", testResult(t))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	rec, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if rec.Actuator != "4310" {
		t.Errorf("expected actuator 4310, got %s", rec.Actuator)
	}
	if rec.KdActual != 5.0 {
		t.Errorf("expected kd_actual 5.0, got %g", rec.KdActual)
	}
	if !rec.Limited {
		t.Error("expected limited run")
	}
	if rec.TrActual == nil || rec.TsActual == nil {
		t.Error("expected finite time metrics")
	}
}

func TestStoreUnboundedMetricsNull(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	res, err := design.Synthesize(design.Request{Inertia: 0.04, FnDes: 10, ZetaDes: 0})
	if err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save("custom", res)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	rec, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if rec.TsActual != nil {
		t.Error("expected null settling time for zero damping")
	}
	if rec.TrActual == nil {
		t.Error("expected finite rise time")
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save("4310", testResult(t)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "never-created"))

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty list, got %d runs", len(runs))
	}
}

func TestStoreSweepFiles(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	results := []design.Result{testResult(t), testResult(t)}
	runID, err := st.SaveSweep("4310", results)
	if err != nil {
		t.Fatalf("save sweep failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	if _, err := os.Stat(filepath.Join(runDir, "design.json")); os.IsNotExist(err) {
		t.Error("design.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "sweep.csv")); os.IsNotExist(err) {
		t.Error("sweep.csv not created")
	}
}

func TestStoreSweepEmpty(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := st.SaveSweep("4310", nil); err == nil {
		t.Error("expected error for empty sweep")
	}
}
