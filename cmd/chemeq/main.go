package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pedrodamas1/chemeq/internal/config"
	"github.com/pedrodamas1/chemeq/internal/experiment"
	"github.com/pedrodamas1/chemeq/internal/export"
	"github.com/pedrodamas1/chemeq/internal/solver"
	"github.com/pedrodamas1/chemeq/internal/storage"
	"github.com/pedrodamas1/chemeq/internal/tui"
	"github.com/pedrodamas1/chemeq/internal/viz"
)

var (
	dataDir    string
	configFile string
	solverName string
	maxIter    int
	tolerance  float64
	guess      float64
	noSave     bool
	asJSON     bool

	// titration flags
	token  string
	from   float64
	to     float64
	points int
	plot   bool
	svgOut string

	exportOut string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chemeq",
		Short: "aqueous equilibrium calculation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".chemeq", "data directory")
	rootCmd.PersistentFlags().StringVar(&solverName, "solver", config.DefaultSolver, "root finder (lm, newton)")
	rootCmd.PersistentFlags().IntVar(&maxIter, "max-iter", config.DefaultMaxIterations, "solver iteration budget")
	rootCmd.PersistentFlags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "residual tolerance")

	solveCmd := &cobra.Command{
		Use:   "solve [system]",
		Short: "solve a system for its equilibrium concentrations",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().StringVar(&configFile, "config", "", "system definition file (yaml)")
	solveCmd.Flags().Float64Var(&guess, "guess", 0, "uniform initial concentration [M] (default 1.0)")
	solveCmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the run")
	solveCmd.Flags().BoolVar(&asJSON, "json", false, "print the saved run as JSON")

	titrateCmd := &cobra.Command{
		Use:   "titrate [system]",
		Short: "sweep a conservation target and trace the pH curve",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTitrate,
	}
	titrateCmd.Flags().StringVar(&configFile, "config", "", "system definition file (yaml)")
	titrateCmd.Flags().StringVar(&token, "constraint", "Na", "conservation token to sweep")
	titrateCmd.Flags().Float64Var(&from, "from", 0.9, "sweep start target [M]")
	titrateCmd.Flags().Float64Var(&to, "to", 1.1, "sweep end target [M]")
	titrateCmd.Flags().IntVar(&points, "points", 100, "number of solved points")
	titrateCmd.Flags().BoolVar(&plot, "plot", true, "draw the curve")
	titrateCmd.Flags().StringVar(&svgOut, "svg", "", "also write the curve as SVG")
	titrateCmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the run")

	watchCmd := &cobra.Command{
		Use:   "watch [system]",
		Short: "titrate with a live curve view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWatch,
	}
	watchCmd.Flags().StringVar(&configFile, "config", "", "system definition file (yaml)")
	watchCmd.Flags().StringVar(&token, "constraint", "Na", "conservation token to sweep")
	watchCmd.Flags().Float64Var(&from, "from", 0.9, "sweep start target [M]")
	watchCmd.Flags().Float64Var(&to, "to", 1.1, "sweep end target [M]")
	watchCmd.Flags().IntVar(&points, "points", 100, "number of solved points")

	systemsCmd := &cobra.Command{
		Use:   "systems",
		Short: "list built-in systems",
		RunE:  listSystems,
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")

	rootCmd.AddCommand(solveCmd, titrateCmd, watchCmd, systemsCmd, runsCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadExperiment resolves the system definition (named preset or
// --config file, flag wins) and binds it to the selected solver.
func loadExperiment(args []string) (*experiment.Experiment, *config.Config, error) {
	registry := experiment.NewRegistry()

	var cfg *config.Config
	var err error
	switch {
	case configFile != "":
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
	case len(args) == 1:
		cfg, err = registry.GetSystem(args[0])
		if err != nil {
			return nil, nil, err
		}
	default:
		cfg = config.DefaultConfig()
	}

	if solverName == config.DefaultSolver && cfg.Solver.Method != "" {
		solverName = cfg.Solver.Method
	}
	opts := solver.Options{MaxIterations: maxIter, Tolerance: tolerance}
	finder, err := registry.GetSolver(solverName, opts)
	if err != nil {
		return nil, nil, err
	}

	exp, err := experiment.New(cfg, finder)
	if err != nil {
		return nil, nil, err
	}
	return exp, cfg, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	exp, cfg, err := loadExperiment(args)
	if err != nil {
		return err
	}

	var initial []float64
	if cmd.Flags().Changed("guess") {
		n := len(exp.System().Species())
		initial = make([]float64, n)
		for i := range initial {
			initial[i] = guess
		}
	}

	res, err := exp.System().Solve(initial)
	if err != nil {
		return fmt.Errorf("%s did not converge: %w", cfg.Name, err)
	}

	fmt.Println(viz.Title.Render(cfg.Name))
	fmt.Println(viz.ResultTable(res))

	if noSave {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.SaveSolve(cfg.Name, solverName, res)
	if err != nil {
		return err
	}
	fmt.Println(viz.Dim.Render("saved run " + runID))
	if asJSON {
		return st.ExportJSON(runID, os.Stdout)
	}
	return nil
}

func runTitrate(cmd *cobra.Command, args []string) error {
	exp, cfg, err := loadExperiment(args)
	if err != nil {
		return err
	}

	sweep := experiment.Titration{Token: token, From: from, To: to, Points: points}
	res, err := exp.Run(sweep)
	if err != nil {
		return err
	}

	if plot {
		fmt.Println(viz.TitrationCurve(res, 70, 15))
	}
	fmt.Printf("%d points, pH %.3f to %.3f\n", len(res.PH), res.PH[0], res.PH[len(res.PH)-1])

	if svgOut != "" {
		if err := export.WriteTitrationSVG(svgOut, res); err != nil {
			return err
		}
		fmt.Println(viz.Dim.Render("wrote " + svgOut))
	}

	if noSave {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.SaveTitration(cfg.Name, solverName, res)
	if err != nil {
		return err
	}
	fmt.Println(viz.Dim.Render("saved run " + runID))
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	exp, _, err := loadExperiment(args)
	if err != nil {
		return err
	}
	return tui.RunLive(exp, experiment.Titration{Token: token, From: from, To: to, Points: points})
}

func listSystems(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSPECIES\tREACTIONS\tCONSTRAINTS")
	for _, name := range registry.ListSystems() {
		cfg, err := registry.GetSystem(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", name, len(cfg.Species), len(cfg.Reactions), len(cfg.Conservation))
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tSYSTEM\tSOLVER\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Kind, r.System, r.Solver, r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return st.ExportJSON(args[0], out)
}
