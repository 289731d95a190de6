// Package store persists design runs under a data directory. Each run
// gets its own directory holding design.json, plus sweep.csv when the
// run was a frequency sweep.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/encos-robotics/jointpd/internal/design"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Record is the persisted form of a design run. Unbounded time metrics
// are stored as null since JSON has no Inf.
type Record struct {
	ID        string    `json:"id"`
	Actuator  string    `json:"actuator"`
	Timestamp time.Time `json:"timestamp"`

	Inertia float64 `json:"inertia"`
	FnDes   float64 `json:"fn_des"`
	ZetaDes float64 `json:"zeta_des"`
	KpMax   float64 `json:"kp_max"`
	KdMax   float64 `json:"kd_max"`

	OmegaNDes float64 `json:"omega_n_des"`
	KpDes     float64 `json:"kp_des"`
	KdDes     float64 `json:"kd_des"`

	KpActual     float64  `json:"kp_actual"`
	KdActual     float64  `json:"kd_actual"`
	OmegaNActual float64  `json:"omega_n_actual"`
	FnActual     float64  `json:"fn_actual"`
	ZetaActual   float64  `json:"zeta_actual"`
	TrActual     *float64 `json:"t_r_actual"`
	TsActual     *float64 `json:"t_s_actual"`

	Limited bool `json:"limited"`
}

func newRecord(actuator string, res design.Result) Record {
	return Record{
		ID:           fmt.Sprintf("%s_%d", actuator, time.Now().Unix()),
		Actuator:     actuator,
		Timestamp:    time.Now(),
		Inertia:      res.Inertia,
		FnDes:        res.FnDes,
		ZetaDes:      res.ZetaDes,
		KpMax:        res.KpMax,
		KdMax:        res.KdMax,
		OmegaNDes:    res.OmegaNDes,
		KpDes:        res.KpDes,
		KdDes:        res.KdDes,
		KpActual:     res.KpActual,
		KdActual:     res.KdActual,
		OmegaNActual: res.OmegaNActual,
		FnActual:     res.FnActual,
		ZetaActual:   res.ZetaActual,
		TrActual:     finiteOrNil(res.TrActual),
		TsActual:     finiteOrNil(res.TsActual),
		Limited:      res.Limited(),
	}
}

func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 1) {
		return nil
	}
	return &v
}

// Save writes one design run and returns its id.
func (s *Store) Save(actuator string, res design.Result) (string, error) {
	rec := newRecord(actuator, res)

	runDir := filepath.Join(s.baseDir, rec.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(runDir, "design.json"), rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// SaveSweep writes a sweep run: the base design plus one CSV row per
// grid point.
func (s *Store) SaveSweep(actuator string, results []design.Result) (string, error) {
	if len(results) == 0 {
		return "", fmt.Errorf("store: empty sweep")
	}

	rec := newRecord(actuator, results[0])
	runDir := filepath.Join(s.baseDir, rec.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(runDir, "design.json"), rec); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "sweep.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"fn_des", "fn_actual", "kp_actual", "kd_actual", "limited"}
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, res := range results {
		row := []string{
			strconv.FormatFloat(res.FnDes, 'f', 6, 64),
			strconv.FormatFloat(res.FnActual, 'f', 6, 64),
			strconv.FormatFloat(res.KpActual, 'f', 6, 64),
			strconv.FormatFloat(res.KdActual, 'f', 6, 64),
			strconv.FormatBool(res.Limited()),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return rec.ID, nil
}

func writeJSON(path string, rec Record) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

// List returns every stored run. A missing data dir is an empty list,
// not an error.
func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, err
	}

	runs := make([]Record, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "design.json"))
		if err != nil {
			continue
		}

		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		runs = append(runs, rec)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*Record, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "design.json"))
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ExportJSONStdout writes one stored run to stdout.
func (s *Store) ExportJSONStdout(runID string) error {
	rec, err := s.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
