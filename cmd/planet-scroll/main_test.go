package main

import (
	"testing"

	"go-planet-scroll/internal/config"
)

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := parseOptions(nil)
	if err != nil {
		t.Fatalf("parseOptions(nil): %v", err)
	}
	if opts != config.DefaultOptions() {
		t.Errorf("got %+v; want defaults %+v", opts, config.DefaultOptions())
	}
}

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions([]string{
		"-backend", "term",
		"-assets", "/tmp/tex",
		"-catalog", "bodies.json",
		"-seed", "99",
		"-page", "4000",
		"-scroll-spin=false",
		"-labels",
		"-pprof", "localhost:6060",
	})
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	want := config.Options{
		Backend:     "term",
		AssetDir:    "/tmp/tex",
		CatalogPath: "bodies.json",
		Seed:        99,
		PageLength:  4000,
		ScrollSpin:  false,
		Labels:      true,
		PprofAddr:   "localhost:6060",
	}
	if opts != want {
		t.Errorf("got %+v; want %+v", opts, want)
	}
}

func TestParseOptionsErrors(t *testing.T) {
	tests := [][]string{
		{"-backend", "vulkan"},
		{"-seed", "abc"},
		{"-no-such-flag"},
	}
	for _, args := range tests {
		if _, err := parseOptions(args); err == nil {
			t.Errorf("parseOptions(%q) succeeded; want error", args)
		}
	}
}
