package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/vi-maze/config"
	"github.com/lixenwraith/vi-maze/input"
	"github.com/lixenwraith/vi-maze/logging"
)

type options struct {
	configPath string
	seed       int64
	stats      bool
}

var (
	configFlag = flag.String("config", "", "TOML config file for the custom mode, controls and key bindings")
	envFlag    = flag.String("env", ".env", "Dotenv file loaded before resolving VI_MAZE_* variables")
	seedFlag   = flag.Int64("seed", 0, "Maze seed, 0 picks one from the clock")
	widthFlag  = flag.Int("width", 960, "Window width")
	heightFlag = flag.Int("height", 720, "Window height")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/vi-maze.log")
	statsFlag  = flag.Bool("stats", false, "Show frame rates on the bottom row")
)

func main() {
	flag.Parse()

	logFile, err := logging.Setup("", *debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := config.LoadDotEnv(*envFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load environment: %v\n", err)
		os.Exit(1)
	}
	res, err := config.Load(config.ModeNormal, *configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	keys := input.DefaultKeyTable()
	if len(res.Keys) > 0 {
		override, err := input.LoadKeyConfig(res.Keys)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid key bindings: %v\n", err)
			os.Exit(1)
		}
		keys = input.MergeKeyTable(keys, override)
	}

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("3D Maze")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := newGame(keys, options{
		configPath: *configFlag,
		seed:       *seedFlag,
		stats:      *statsFlag,
	})
	if err := ebiten.RunGame(g); err != nil {
		logging.Log.Errorf("run: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
