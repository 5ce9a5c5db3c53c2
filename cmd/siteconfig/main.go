package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rbott/blog-siteconfig/app/cfg"
	"github.com/rbott/blog-siteconfig/app/config"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	appCfg, err := cfg.Load()
	if err != nil {
		os.Exit(2)
	}
	if appCfg == nil {
		// Help was shown
		return
	}

	if err := run(appCfg); err != nil {
		log.Fatal(err)
	}
}

func run(appCfg *cfg.Cfg) error {
	if appCfg.Debug {
		log.Printf("siteconfig %s, manifest %s", appCfg.Version, appCfg.ManifestPath)
	}

	site, err := config.Load(config.LoadOptions{
		ManifestPath:  appCfg.ManifestPath,
		OverridesPath: appCfg.OverridesPath,
		URL:           appCfg.URL,
	})
	if err != nil {
		return fmt.Errorf("failed to load site configuration: %w", err)
	}
	if appCfg.Debug {
		log.Printf("Site %s at %s, %s %s", site.Site.Title, site.Site.URL,
			site.Site.Generator.Name, site.Site.Generator.Version)
	}

	if err := config.Validate(site); err != nil {
		return fmt.Errorf("invalid site configuration:\n%w", err)
	}

	if appCfg.OutputPath == "" {
		return config.Encode(os.Stdout, site, appCfg.Format)
	}
	return writeFile(appCfg.OutputPath, site, appCfg.Format)
}

// writeFile encodes into a temporary file next to path and renames it into
// place, so a failed encode never leaves a truncated file behind.
func writeFile(path string, site *config.SiteConfig, format string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmpPath)
		}
	}()

	w := bufio.NewWriter(f)
	if err := config.Encode(w, site, format); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := f.Chmod(0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", tmpPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	log.Printf("Wrote site configuration to %s", path)

	return nil
}
