package main

import (
	"flag"
	"os"

	"GopherBuiltins/internal/builtin"
	"GopherBuiltins/internal/config"
	"GopherBuiltins/internal/engine"
	"GopherBuiltins/internal/logger"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "builtins.json", "path to the JSON config")
	fragPath := flag.String("frag", "", "fragment shader to preview (overrides the config)")
	legacy := flag.Bool("legacy-lights", false, "render as a host without light queries")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	logger.Init(cfg.DebugLogging)
	defer logger.Sync()
	if err != nil {
		if !config.IsNotExist(err) {
			logger.Log.Fatal("Could not load config", zap.Error(err))
		}
		logger.Log.Info("No config file found, using defaults", zap.String("path", *configPath))
	}

	if *fragPath != "" {
		cfg.FragmentShader = *fragPath
	}
	var fragment string
	if cfg.FragmentShader != "" {
		src, err := os.ReadFile(cfg.FragmentShader)
		if err != nil {
			logger.Log.Fatal("Could not read fragment shader", zap.String("path", cfg.FragmentShader), zap.Error(err))
		}
		fragment = string(src)
	}

	gopher := engine.NewGopher(cfg, builtin.NewLibrary(), fragment)
	gopher.LegacyLights = *legacy
	if err := gopher.Render(); err != nil {
		logger.Log.Fatal("Render failed", zap.Error(err))
	}
}
