package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-maze/config"
	"github.com/lixenwraith/vi-maze/core"
	"github.com/lixenwraith/vi-maze/input"
	"github.com/lixenwraith/vi-maze/logging"
)

var (
	modeFlag      = flag.String("mode", "", "Skip the title screen and start in mode: easy, normal, custom")
	configFlag    = flag.String("config", "", "TOML config file for the custom mode, controls and key bindings")
	envFlag       = flag.String("env", ".env", "Dotenv file loaded before resolving VI_MAZE_* variables")
	seedFlag      = flag.Int64("seed", 0, "Maze seed, 0 picks one from the clock")
	raysFlag      = flag.Int("rays", 0, "Rays per frame, 0 casts one ray per terminal column")
	fpsFlag       = flag.Int("fps", 0, "Target frames per second, 0 uses the default")
	debugFlag     = flag.Bool("debug", false, "Write logs to logs/vi-maze.log")
	statsFlag     = flag.Bool("stats", false, "Show frame metrics on the bottom row")
	mouseLookFlag = flag.Bool("mouselook", false, "Turn and look with mouse hover motion")
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

	var start config.Mode
	if *modeFlag != "" {
		if start, err = config.ParseMode(*modeFlag); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}
	}

	// Resolve once up front so configuration errors surface before the terminal switches mode
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

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashRestore(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	a := newApp(screen, keys, options{
		configPath: *configFlag,
		seed:       *seedFlag,
		rays:       *raysFlag,
		fps:        *fpsFlag,
		stats:      *statsFlag,
		mouseLook:  *mouseLookFlag,
	})
	err = a.run(*modeFlag != "", start)

	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
