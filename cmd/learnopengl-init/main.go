package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/fosdem/learnopengl/lib/config"
	"github.com/fosdem/learnopengl/lib/rendering/shaders"
	"github.com/fosdem/learnopengl/lib/utils"
)

func main() {
	dir := flag.String("dir", ".", "directory to write the shaders into")
	configPath := flag.String("config", "", "take triangle_colour from this config file")
	colour := flag.String("colour", "", "triangle colour as #rrggbbaa, overrides the config")
	glsl := flag.String("glsl", "330 core", "GLSL #version line")
	force := flag.Bool("force", false, "overwrite existing shader files")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Parse(*configPath)
		if err != nil {
			log.Fatalf("Config invalid: %s", err)
		}
	}
	if *colour != "" {
		cfg.TriangleColour = *colour
	}
	if !utils.ColourValidate(cfg.TriangleColour) {
		log.Fatalf("%s is not a valid RGBA hex colour", cfg.TriangleColour)
	}

	shaderer, err := shaders.NewShaderer()
	if err != nil {
		log.Fatalf("could not load shader templates: %s", err)
	}
	written, err := shaderer.WriteStarterFiles(*dir, &shaders.ShaderData{
		GLSLVersion: *glsl,
		Colour:      utils.ColourParse(cfg.TriangleColour),
	}, *force)
	if err != nil {
		log.Fatalf("could not write shaders: %s", err)
	}
	for _, path := range written {
		fmt.Printf("wrote %s\n", path)
	}
}
