package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/boothopt/pkg/booths"
	"github.com/dshills/boothopt/pkg/config"
	"github.com/dshills/boothopt/pkg/optimizer"
	"github.com/dshills/boothopt/pkg/placement"
	"github.com/dshills/boothopt/pkg/render"
	"github.com/dshills/boothopt/pkg/scene"
	"github.com/dshills/boothopt/pkg/svg2config"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "Path to a scene configuration file (commented JSON, required unless -svg is given)")
	svgPath    = flag.String("svg", "", "Path to a vector drawing to compile into a scene instead of -config")
	colorsPath = flag.String("colors", "", "Path to a YAML color-table override for -svg (default: built-in table)")
	boothsPath = flag.String("booths", "", "Path to a CSV booth request table; appended to the scene's own booths")
	outputDir  = flag.String("output", ".", "Output directory for the placement table and layout diagram")
	solverName = flag.String("solver", "local_search", "Registered solver to invoke")
	seedFlag   = flag.Uint64("seed", 0, "Override the scene's solver seed (0 = use the scene's own seed)")
	workersF   = flag.Int("workers", 0, "Override the scene's worker count (0 = use the scene's own value)")
	maxTimeF   = flag.Float64("max-time", 0, "Override the scene's wall-clock budget in seconds (0 = use the scene's own value)")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("boothopt version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}
	if *configPath == "" && *svgPath == "" {
		fmt.Fprintln(os.Stderr, "Error: one of -config or -svg is required")
		printUsage()
		os.Exit(1)
	}

	status, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(status)
	if !optimizer.Status(status).Success() {
		os.Exit(1)
	}
}

func run() (string, error) {
	ctx := context.Background()

	s, err := loadScene()
	if err != nil {
		return "", fmt.Errorf("loading scene: %w", err)
	}

	if *boothsPath != "" {
		extra, err := booths.LoadBoothTable(*boothsPath)
		if err != nil {
			return "", fmt.Errorf("loading booth table: %w", err)
		}
		if *verbose {
			fmt.Printf("Loaded %d booth request(s) from %s\n", len(extra), *boothsPath)
		}
		s.Booths = append(s.Booths, extra...)
	}
	applyOverrides(s)

	if err := s.Validate(); err != nil {
		return "", fmt.Errorf("invalid scene: %w", err)
	}

	m, err := optimizer.BuildModel(s)
	if err != nil {
		return string(optimizer.StatusModelInvalid), fmt.Errorf("building model: %w", err)
	}

	solver, err := optimizer.Get(*solverName, s.Solver)
	if err != nil {
		return string(optimizer.StatusModelInvalid), fmt.Errorf("resolving solver: %w", err)
	}

	if *verbose {
		fmt.Printf("Solving %d booth(s) with %q (budget=%.1fs, workers=%d, seed=%d)\n",
			len(s.Booths), *solverName, s.Solver.MaxTimeInSeconds, s.Solver.Workers, s.Solver.Seed)
	}

	timeout := time.Duration(s.Solver.MaxTimeInSeconds * float64(time.Second))
	solveCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	res, err := solver.Solve(solveCtx, m)
	elapsed := time.Since(start)
	if *verbose {
		fmt.Printf("Solver finished in %v with status %s\n", elapsed, res.Status)
	}

	// Treat OPTIMAL and FEASIBLE as success (spec §4.3); any other
	// status is fatal and no outputs are produced (spec §7).
	if !res.Status.Success() {
		return string(res.Status), nil
	}
	if err != nil {
		return string(res.Status), fmt.Errorf("solver reported success but returned an error: %w", err)
	}

	placements, err := placement.FromResult(m, res)
	if err != nil {
		return string(optimizer.StatusModelInvalid), fmt.Errorf("deriving placements: %w", err)
	}
	if err := placement.AssertInvariants(m, placements); err != nil {
		return string(optimizer.StatusModelInvalid), fmt.Errorf("post-solve invariant check failed: %w", err)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	tablePath := filepath.Join(*outputDir, "placements.csv")
	if err := placement.Emit(tablePath, placements); err != nil {
		return "", fmt.Errorf("emitting placement table: %w", err)
	}
	if *verbose {
		fmt.Printf("Wrote placement table to %s\n", tablePath)
	}

	diagramPath := filepath.Join(*outputDir, "layout.svg")
	if err := render.SaveSVGToFile(s, placements, diagramPath, render.DefaultOptions()); err != nil {
		return "", fmt.Errorf("rendering layout diagram: %w", err)
	}
	if *verbose {
		fmt.Printf("Wrote layout diagram to %s\n", diagramPath)
	}

	return string(res.Status), nil
}

func loadScene() (*scene.Scene, error) {
	if *svgPath != "" {
		data, err := os.ReadFile(*svgPath)
		if err != nil {
			return nil, fmt.Errorf("reading drawing: %w", err)
		}

		ct := config.DefaultColorTable()
		if *colorsPath != "" {
			loaded, err := config.LoadColorTable(*colorsPath)
			if err != nil {
				return nil, fmt.Errorf("loading color table: %w", err)
			}
			ct = loaded
		}

		s, err := svg2config.Compile(data, ct)
		if err != nil {
			return nil, fmt.Errorf("compiling drawing: %w", err)
		}
		return s, nil
	}

	return config.LoadScene(*configPath)
}

// applyOverrides layers CLI flag overrides onto the scene's own solver
// configuration, then re-normalizes so any remaining zero values fall
// back to the package defaults.
func applyOverrides(s *scene.Scene) {
	if *seedFlag != 0 {
		s.Solver.Seed = *seedFlag
	}
	if *workersF != 0 {
		s.Solver.Workers = *workersF
	}
	if *maxTimeF != 0 {
		s.Solver.MaxTimeInSeconds = *maxTimeF
	}
	s.Solver = s.Solver.Normalized()
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: boothopt -config <scene.json> [options]")
	fmt.Fprintln(os.Stderr, "   or: boothopt -svg <drawing.svg> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'boothopt -help' for detailed help")
}

func printHelp() {
	fmt.Printf("boothopt version %s\n\n", version)
	fmt.Println("Places exhibition booths inside an annotated hall: compiles infrastructure")
	fmt.Println("from a vector drawing or a scene configuration, solves the placement, and")
	fmt.Println("emits a placement table plus a layout diagram.")
	fmt.Println("\nUsage:")
	fmt.Println("  boothopt -config <scene.json> [options]")
	fmt.Println("  boothopt -svg <drawing.svg> [options]")
	fmt.Println("\nInput Flags (exactly one of -config or -svg is required):")
	fmt.Println("  -config string")
	fmt.Println("        Path to a scene configuration file (commented JSON)")
	fmt.Println("  -svg string")
	fmt.Println("        Path to a vector drawing to compile into a scene")
	fmt.Println("  -colors string")
	fmt.Println("        Path to a YAML color-table override for -svg")
	fmt.Println("  -booths string")
	fmt.Println("        Path to a CSV booth request table, appended to the scene's own booths")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for the placement table and diagram (default: current directory)")
	fmt.Println("  -solver string")
	fmt.Println("        Registered solver to invoke (default: local_search)")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the scene's solver seed (0 = use the scene's own seed)")
	fmt.Println("  -workers int")
	fmt.Println("        Override the scene's worker count (0 = use the scene's own value)")
	fmt.Println("  -max-time float")
	fmt.Println("        Override the scene's wall-clock budget in seconds (0 = use the scene's own value)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  boothopt -config hall.json -booths booths.csv -output ./out")
	fmt.Println("  boothopt -svg hall.svg -colors colors.yaml -verbose -output ./out")
}
