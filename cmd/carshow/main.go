package main

import (
	"flag"
	"log"

	"carshow"
)

func main() {
	var cfg carshow.Config

	flag.IntVar(&cfg.Width, "width", 1280, "window width")
	flag.IntVar(&cfg.Height, "height", 720, "window height")
	flag.StringVar(&cfg.ModelPath, "model", "assets/ferrari.glb", "car model file (.glb, .gltf or .obj)")
	flag.StringVar(&cfg.ShadowPath, "shadow", "assets/ferrari_ao.png", "baked ground shadow texture (empty disables it)")
	flag.StringVar(&cfg.BodyColor, "body", "", "body color as #rrggbb")
	flag.StringVar(&cfg.TrimColor, "trim", "", "trim color as #rrggbb")
	flag.StringVar(&cfg.GlassColor, "glass", "", "glass color as #rrggbb")
	flag.Parse()

	viewer, err := carshow.NewViewer(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := viewer.Run(); err != nil {
		log.Fatal(err)
	}
}
