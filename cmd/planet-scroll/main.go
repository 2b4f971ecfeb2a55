// cmd/planet-scroll/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"

	"go-planet-scroll/internal/config"
	"go-planet-scroll/internal/defs"
	"go-planet-scroll/internal/render/ebview"
	"go-planet-scroll/internal/render/rlview"
	"go-planet-scroll/internal/render/termview"
)

func parseOptions(args []string) (config.Options, error) {
	opts := config.DefaultOptions()
	fs := flag.NewFlagSet("planet-scroll", flag.ContinueOnError)
	fs.StringVar(&opts.Backend, "backend", opts.Backend, "Output: raylib, ebiten or term")
	fs.StringVar(&opts.AssetDir, "assets", opts.AssetDir, "Directory with the texture images")
	fs.StringVar(&opts.CatalogPath, "catalog", "", "Optional JSON file replacing the built-in planet catalog")
	fs.Int64Var(&opts.Seed, "seed", 0, "Star field seed (0 = time based)")
	fs.Float64Var(&opts.PageLength, "page", opts.PageLength, "Scrollable page length in pixels")
	fs.BoolVar(&opts.ScrollSpin, "scroll-spin", opts.ScrollSpin, "Also spin the planets on every scroll step")
	fs.BoolVar(&opts.Labels, "labels", false, "Draw planet names")
	fs.StringVar(&opts.PprofAddr, "pprof", "", "Serve net/http/pprof on this address")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	switch opts.Backend {
	case "raylib", "ebiten", "term":
	default:
		return opts, fmt.Errorf("unknown backend %q", opts.Backend)
	}
	return opts, nil
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	if opts.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(opts.PprofAddr, nil))
		}()
	}

	bodies, err := defs.LoadBodyDefinitions(opts.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch opts.Backend {
	case "ebiten":
		err = ebview.Run(ctx, opts, bodies)
	case "term":
		err = termview.Run(ctx, opts, bodies)
	default:
		err = rlview.Run(ctx, opts, bodies)
	}
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}
