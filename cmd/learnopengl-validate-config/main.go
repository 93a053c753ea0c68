package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/fosdem/learnopengl/lib/config"
	applog "github.com/fosdem/learnopengl/lib/log"
	"github.com/fosdem/learnopengl/lib/rendering/shaders"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <config file>", os.Args[0])
	}
	applog.Setup(slog.LevelWarn)

	cfg, err := config.Parse(os.Args[1])
	if err != nil {
		fmt.Printf("Config invalid: %s\n", err)
		os.Exit(1)
	}

	fmt.Print("Config valid!\n\n")

	fmt.Print(cfg)

	missing := false
	for _, path := range []config.CfgPath{cfg.Shaders.Vertex, cfg.Shaders.Fragment} {
		if _, err := shaders.LoadSource(string(path)); err != nil {
			missing = true
		}
	}
	if missing {
		fmt.Print("\nShader sources are not readable, the demo would not start.\n")
		os.Exit(1)
	}
}
