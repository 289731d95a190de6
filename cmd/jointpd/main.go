package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/encos-robotics/jointpd/internal/catalog"
	"github.com/encos-robotics/jointpd/internal/config"
	"github.com/encos-robotics/jointpd/internal/design"
	"github.com/encos-robotics/jointpd/internal/report"
	"github.com/encos-robotics/jointpd/internal/store"
	"github.com/encos-robotics/jointpd/internal/sweep"
	"github.com/encos-robotics/jointpd/internal/tui"
)

var (
	dataDir     string
	catalogFile string
	inertia     float64
	fn          float64
	zeta        float64
	kpMax       float64
	kdMax       float64
	configFile  string
	preset      string
	asJSON      bool
	saveRun     bool
	fnMin       float64
	fnMax       float64
	points      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jointpd",
		Short: "constrained PD gain design for single-joint actuators",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive tuner when no command given
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			return tui.Run(cat, config.DefaultConfig())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".jointpd", "data directory")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "actuator catalog overlay (yaml)")

	designCmd := &cobra.Command{
		Use:   "design [model]",
		Short: "compute PD gains for one actuator",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDesign,
	}
	designCmd.Flags().Float64Var(&inertia, "inertia", 0, "joint inertia J in kg·m² (overrides catalog)")
	designCmd.Flags().Float64Var(&fn, "fn", config.DefaultFn, "desired natural frequency (Hz)")
	designCmd.Flags().Float64Var(&zeta, "zeta", config.DefaultZeta, "desired damping ratio")
	designCmd.Flags().Float64Var(&kpMax, "kp-max", config.DefaultKpMax, "kp cap (<=0 for unbounded)")
	designCmd.Flags().Float64Var(&kdMax, "kd-max", config.DefaultKdMax, "kd cap (<=0 for unbounded)")
	designCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	designCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	designCmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")
	designCmd.Flags().BoolVar(&saveRun, "save", false, "save the run to the data directory")

	actuatorsCmd := &cobra.Command{
		Use:   "actuators",
		Short: "list the actuator catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			return report.Actuators(os.Stdout, cat)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for an actuator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for actuator: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [model]",
		Short: "sweep the design across a frequency range",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&fnMin, "fn-min", 1.0, "lowest requested frequency (Hz)")
	sweepCmd.Flags().Float64Var(&fnMax, "fn-max", 30.0, "highest requested frequency (Hz)")
	sweepCmd.Flags().IntVar(&points, "points", 30, "number of grid points")
	sweepCmd.Flags().Float64Var(&inertia, "inertia", 0, "joint inertia J in kg·m² (overrides catalog)")
	sweepCmd.Flags().Float64Var(&zeta, "zeta", config.DefaultZeta, "desired damping ratio")
	sweepCmd.Flags().Float64Var(&kpMax, "kp-max", config.DefaultKpMax, "kp cap (<=0 for unbounded)")
	sweepCmd.Flags().Float64Var(&kdMax, "kd-max", config.DefaultKdMax, "kd cap (<=0 for unbounded)")
	sweepCmd.Flags().BoolVar(&saveRun, "save", false, "save the sweep to the data directory")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare every catalog actuator at one target",
		RunE:  runCompare,
	}
	compareCmd.Flags().Float64Var(&fn, "fn", config.DefaultFn, "desired natural frequency (Hz)")
	compareCmd.Flags().Float64Var(&zeta, "zeta", config.DefaultZeta, "desired damping ratio")
	compareCmd.Flags().Float64Var(&kpMax, "kp-max", config.DefaultKpMax, "kp cap (<=0 for unbounded)")
	compareCmd.Flags().Float64Var(&kdMax, "kd-max", config.DefaultKdMax, "kd cap (<=0 for unbounded)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return store.New(dataDir).ExportJSONStdout(args[0])
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal tuner",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			return tui.Run(cat, config.DefaultConfig())
		},
	}

	rootCmd.AddCommand(designCmd, actuatorsCmd, presetsCmd, sweepCmd, compareCmd, listCmd, exportCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadCatalog() (*catalog.Catalog, error) {
	if catalogFile == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(catalogFile)
}

// resolveRequest merges preset, config file, and flags (flags win) and
// resolves the J value from the catalog unless an explicit inertia is
// given.
func resolveRequest(cmd *cobra.Command, args []string) (design.Request, string, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Actuator = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.Actuator, preset)
		if p == nil {
			return design.Request{}, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Actuator))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return design.Request{}, "", fmt.Errorf("failed to load config: %w", err)
		}
		if len(args) > 0 {
			loaded.Actuator = args[0]
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("fn") {
		cfg.Fn = fn
	}
	if cmd.Flags().Changed("zeta") {
		cfg.Zeta = zeta
	}
	if cmd.Flags().Changed("kp-max") {
		cfg.KpMax = kpMax
	}
	if cmd.Flags().Changed("kd-max") {
		cfg.KdMax = kdMax
	}
	if cmd.Flags().Changed("inertia") {
		cfg.Inertia = inertia
	}

	if cfg.Inertia > 0 {
		return cfg.Request(cfg.Inertia), "custom", nil
	}

	cat, err := loadCatalog()
	if err != nil {
		return design.Request{}, "", err
	}
	spec, ok := cat.Get(cfg.Actuator)
	if !ok {
		return design.Request{}, "", fmt.Errorf("unknown actuator model: %s (available: %v)", cfg.Actuator, cat.Models())
	}
	return cfg.Request(spec.Inertia), spec.Model, nil
}

func runDesign(cmd *cobra.Command, args []string) error {
	req, actuator, err := resolveRequest(cmd, args)
	if err != nil {
		return err
	}

	res, err := design.Synthesize(req)
	if err != nil {
		return err
	}

	if asJSON {
		st := store.New(dataDir)
		if saveRun {
			if err := st.Init(); err != nil {
				return err
			}
			if _, err := st.Save(actuator, res); err != nil {
				return err
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonSafe(actuator, res))
	}

	fmt.Printf("actuator %s, J=%.7f kg·m²\n\n", actuator, res.Inertia)
	if err := report.Comparison(os.Stdout, res); err != nil {
		return err
	}
	fmt.Println()
	report.Notice(os.Stdout, res)

	if saveRun {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(actuator, res)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

// jsonSafe replaces Inf time metrics with null for encoding.
func jsonSafe(actuator string, res design.Result) map[string]any {
	out := map[string]any{
		"actuator":       actuator,
		"inertia":        res.Inertia,
		"fn_des":         res.FnDes,
		"zeta_des":       res.ZetaDes,
		"kp_max":         res.KpMax,
		"kd_max":         res.KdMax,
		"omega_n_des":    res.OmegaNDes,
		"kp_des":         res.KpDes,
		"kd_des":         res.KdDes,
		"kp_actual":      res.KpActual,
		"kd_actual":      res.KdActual,
		"omega_n_actual": res.OmegaNActual,
		"fn_actual":      res.FnActual,
		"zeta_actual":    res.ZetaActual,
		"limited":        res.Limited(),
	}
	if res.Responds() {
		out["t_r_actual"] = res.TrActual
	} else {
		out["t_r_actual"] = nil
	}
	if res.Settles() {
		out["t_s_actual"] = res.TsActual
	} else {
		out["t_s_actual"] = nil
	}
	return out
}

func runSweep(cmd *cobra.Command, args []string) error {
	req, actuator, err := resolveRequest(cmd, args)
	if err != nil {
		return err
	}

	sr, err := sweep.Frequency(req, fnMin, fnMax, points)
	if err != nil {
		return err
	}

	fmt.Printf("actuator %s, zeta=%.2f, %d points\n\n", actuator, req.ZetaDes, points)
	report.SweepPlot(os.Stdout, sr)
	fmt.Println()
	if err := report.SweepTable(os.Stdout, sr.Results); err != nil {
		return err
	}
	if sr.MaxUnlimited > 0 {
		fmt.Printf("\nhighest unconstrained request: %.2f Hz\n", sr.MaxUnlimited)
	} else {
		fmt.Println("\nevery point in the sweep was gain-limited")
	}

	if saveRun {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveSweep(actuator, sr.Results)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	results, err := sweep.Catalog(cat, fn, zeta, bound(kpMax), bound(kdMax))
	if err != nil {
		return err
	}

	fmt.Printf("target: fn=%.2f Hz, zeta=%.2f\n\n", fn, zeta)
	return report.CatalogTable(os.Stdout, cat, results)
}

func bound(v float64) design.Bound {
	if v <= 0 {
		return design.NoLimit()
	}
	return design.Limit(v)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tACTUATOR\tTIME\tFN_DES\tFN_ACTUAL\tKP\tKD\tLIMITED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.2f\t%.3f\t%.3f\t%v\n",
			run.ID,
			run.Actuator,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.FnDes,
			run.FnActual,
			run.KpActual,
			run.KdActual,
			run.Limited,
		)
	}
	return w.Flush()
}
