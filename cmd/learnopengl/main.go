package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fosdem/learnopengl/lib/config"
	"github.com/fosdem/learnopengl/lib/demo"
	applog "github.com/fosdem/learnopengl/lib/log"
	"github.com/fosdem/learnopengl/lib/platform/glfwplatform"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file; built-in defaults are used when empty")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error), overrides the config")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Parse(*configPath)
		if err != nil {
			applog.Setup(slog.LevelInfo)
			slog.Error(err.Error(), slog.String("module", "main"))
			os.Exit(-1)
		}
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	level, err := applog.ParseLevel(cfg.LogLevel)
	if err != nil {
		applog.Setup(slog.LevelInfo)
		slog.Error(err.Error(), slog.String("module", "main"))
		os.Exit(-1)
	}
	applog.Setup(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := demo.MakeWindowAndRun(ctx, glfwplatform.New(), cfg)
	stop()
	os.Exit(code)
}
