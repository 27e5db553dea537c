package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hearthstead/floorcore/pkg/config"
	"github.com/hearthstead/floorcore/pkg/floorplan"
)

const version = "0.1.0"

var (
	scenarioPath = flag.String("scenario", "", "Path to a YAML house scenario file (required)")
	configPath   = flag.String("config", "", "Path to a Core YAML config file (optional; defaults applied otherwise)")
	verbose      = flag.Bool("verbose", false, "Enable verbose output")
	versionF     = flag.Bool("version", false, "Print version and exit")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("floorcore version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}
	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -scenario flag is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		fmt.Printf("Loading scenario from %s\n", *scenarioPath)
	}
	sc, err := loadScenario(*scenarioPath)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		if *verbose {
			fmt.Printf("Loading config from %s\n", *configPath)
		}
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	core := floorplan.NewCore(cfg)

	project, err := core.CreateProject(sc.Project)
	if err != nil {
		return fmt.Errorf("create_project: %w", err)
	}
	building, err := core.AddBuilding(project.ID, sc.Building)
	if err != nil {
		return fmt.Errorf("add_building: %w", err)
	}
	level, err := core.AddLevel(building.ID, sc.Level, sc.Elevation, sc.FloorToFloor)
	if err != nil {
		return fmt.Errorf("add_level: %w", err)
	}
	if sc.Footprint.Width > 0 && sc.Footprint.Depth > 0 {
		if _, _, err := core.SetLevelFootprintRect(level.ID, sc.Footprint.Width, sc.Footprint.Depth); err != nil {
			return fmt.Errorf("set_level_footprint_rect: %w", err)
		}
	}

	for _, rs := range sc.Rooms {
		if *verbose {
			fmt.Printf("Creating room %q (%s)\n", rs.Name, rs.Type)
		}
		if _, _, err := core.CreateRoom(level.ID, roomType(rs.Type), rs.Name, rs.polygon()); err != nil {
			return fmt.Errorf("create_room %q: %w", rs.Name, err)
		}
	}

	text, err := core.FormatObservableState(level.ID)
	if err != nil {
		return fmt.Errorf("get_observable_state: %w", err)
	}
	fmt.Println(text)
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: floorcore -scenario <file.yaml> [-config <file.yaml>] [-verbose]")
}

func printHelp() {
	fmt.Println("floorcore - build a small house from a YAML scenario and print its LLM-facing state")
	fmt.Println()
	printUsage()
	fmt.Println()
	flag.PrintDefaults()
}
