package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	if cat.Len() != 5 {
		t.Errorf("expected 5 builtin models, got %d", cat.Len())
	}

	spec, ok := cat.Get("4310")
	if !ok {
		t.Fatal("expected model 4310")
	}
	if spec.Inertia != 0.0231825 {
		t.Errorf("expected inertia 0.0231825, got %g", spec.Inertia)
	}

	if _, ok := cat.Get(DefaultModel); !ok {
		t.Errorf("default model %s missing from catalog", DefaultModel)
	}

	if _, ok := cat.Get("9999"); ok {
		t.Error("expected miss for unknown model")
	}
}

func TestModelsSorted(t *testing.T) {
	models := Default().Models()
	if len(models) != 5 {
		t.Fatalf("expected 5 models, got %d", len(models))
	}
	for i := 1; i < len(models); i++ {
		if models[i-1] >= models[i] {
			t.Errorf("models not sorted: %s before %s", models[i-1], models[i])
		}
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actuators.yaml")
	data := "4310: 0.025\n9020: 0.11\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	spec, _ := cat.Get("4310")
	if spec.Inertia != 0.025 {
		t.Errorf("override not applied: got %g", spec.Inertia)
	}

	spec, ok := cat.Get("9020")
	if !ok || spec.Inertia != 0.11 {
		t.Errorf("new model not loaded: %v %g", ok, spec.Inertia)
	}

	if _, ok := cat.Get("8116"); !ok {
		t.Error("builtin model lost after overlay")
	}
}

func TestLoadRejectsNonPositiveInertia(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actuators.yaml")
	if err := os.WriteFile(path, []byte("bad: -0.1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for non-positive inertia")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
