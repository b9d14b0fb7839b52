// Package main generates markdown reference documentation for sqlsubstr
// from the CLI commands, configuration defaults and dialect registry.
//
// Usage:
//
//	go run ./scripts/gendocs -gen=cli -outdir=docs/cli
//	go run ./scripts/gendocs -gen=config -outdir=docs/reference
//	go run ./scripts/gendocs -gen=dialects -outdir=docs/reference
//	go run ./scripts/gendocs -gen=all
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
)

var (
	genFlag    = flag.String("gen", "all", "what to generate: cli, config, dialects, all")
	outDirFlag = flag.String("outdir", "", "output directory (defaults based on gen type)")
)

func main() {
	flag.Parse()

	generators := map[string]struct {
		dir string
		fn  func(string) error
	}{
		"cli":      {dir: filepath.Join("docs", "cli"), fn: generateCLIDocs},
		"config":   {dir: filepath.Join("docs", "reference"), fn: generateConfigDocs},
		"dialects": {dir: filepath.Join("docs", "reference"), fn: generateDialectDocs},
	}

	if _, ok := generators[*genFlag]; !ok && *genFlag != "all" {
		log.Fatalf("unknown -gen value: %s (use: cli, config, dialects, all)", *genFlag)
	}

	// Find project root (where go.mod is)
	projectRoot, err := findProjectRoot()
	if err != nil {
		log.Fatalf("failed to find project root: %v", err)
	}
	log.Printf("Project root: %s", projectRoot)

	for _, name := range []string{"cli", "config", "dialects"} {
		if *genFlag != "all" && *genFlag != name {
			continue
		}
		g := generators[name]
		outDir := filepath.Join(projectRoot, g.dir)
		if *outDirFlag != "" && *genFlag != "all" {
			outDir = *outDirFlag
		}
		if err := g.fn(outDir); err != nil {
			log.Fatalf("failed to generate %s docs: %v", name, err)
		}
	}

	log.Println("Done!")
}

// findProjectRoot walks up from current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
