package main

import (
	"flag"
	"fmt"
	"os"

	"print-utils/models"
	"print-utils/utils"
	"print-utils/views"
)

func main() {
	// ── CLI flags ────────────────────────────────────────────────────
	configPath := flag.String("config", "", "optional path to printutils.yaml")
	logFile := flag.String("log", "", "optional log file path (stderr is always included)")
	outDir := flag.String("out", "", "output directory (overrides output.dir)")
	mode := flag.String("mode", "", "faithful or hardened (overrides output.mode)")
	flag.Parse()

	// ── Config ───────────────────────────────────────────────────────
	cfg := utils.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = utils.LoadConfig(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, "load config:", err)
			os.Exit(1)
		}
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *mode != "" {
		cfg.Output.Mode = *mode
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}

	// ── Logger ───────────────────────────────────────────────────────
	level, err := utils.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		level = utils.INFO
	}
	logger := utils.InitLogger(level, cfg.Log.File)
	defer logger.Close()

	w, err := views.NewWriter(cfg)
	if err != nil {
		utils.L().Fatal("init writer: %v", err)
	}
	w.Log = logger

	// ── Demo ─────────────────────────────────────────────────────────
	v := []int{1, 2, 3, 4, 5}
	fmt.Println("Vector v = ")
	if err := views.PrintSequence(os.Stdout, v); err != nil {
		utils.L().Fatal("print vector: %v", err)
	}
	fmt.Println()

	vv := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	fmt.Println("Matrix vv = ")
	if err := views.PrintGrid(os.Stdout, vv); err != nil {
		utils.L().Fatal("print matrix: %v", err)
	}
	fmt.Println()

	if err := w.Write(views.ShapeGrid, models.NewGrid(vv), "matrix"); err != nil {
		utils.L().Fatal("write matrix: %v", err)
	}
	utils.L().Info("matrix written to %s (mode=%s)", w.Path("matrix"), w.Mode)
}
