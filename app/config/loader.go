package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// LoadOptions are the external inputs of the site configuration
type LoadOptions struct {
	ManifestPath  string
	OverridesPath string // optional YAML overlay
	URL           string // canonical URL override, ignored when empty
}

var globalSite *SiteConfig

// Load builds the site configuration once at startup and makes it available
// through Get. An unreadable manifest or a missing generator dependency is
// not fatal: the generator version becomes UnknownVersion.
func Load(opts LoadOptions) (*SiteConfig, error) {
	version := resolveGeneratorVersion(opts.ManifestPath)

	site := New(version, opts.URL)

	if opts.OverridesPath != "" {
		if err := LoadOverrides(opts.OverridesPath, &site); err != nil {
			return nil, err
		}
		log.Printf("Applied site overrides from %s", opts.OverridesPath)

		// The environment and the manifest win over the overlay
		site.Site.Generator.Version = version
		if opts.URL != "" {
			site.Site.URL = opts.URL
		}
		applyFallbacks(&site)
	}

	stored := site.Clone()
	globalSite = &stored

	return &site, nil
}

// Get returns a copy of the configuration built by Load
func Get() SiteConfig {
	if globalSite == nil {
		panic("site configuration not loaded - call config.Load() first")
	}
	return globalSite.Clone()
}

// Clone returns a copy of site that shares no slices with it
func (s SiteConfig) Clone() SiteConfig {
	s.Author.Fediverse = slices.Clone(s.Author.Fediverse)
	s.MetaPages = slices.Clone(s.MetaPages)
	s.ShareButtons = slices.Clone(s.ShareButtons)
	if s.MetaPages == nil {
		s.MetaPages = []MetaPage{}
	}
	return s
}

// applyFallbacks restores defaults and derived fields an overlay may have
// blanked out.
func applyFallbacks(site *SiteConfig) {
	if site.Site.URL == "" {
		site.Site.URL = DefaultURL
	}
	if site.Site.Generator.Version == "" {
		site.Site.Generator.Version = UnknownVersion
	}
	if site.MetaPages == nil {
		site.MetaPages = []MetaPage{}
	}
	for i, handle := range site.Author.Fediverse {
		if handle.URL == "" && handle.Server != "" && handle.Username != "" {
			site.Author.Fediverse[i].URL = ProfileURL(handle.Server, handle.Username)
		}
	}
}

// LoadOverrides merges a YAML overlay into site. Keys absent from the file
// keep their current values; lists present in the file replace the defaults.
func LoadOverrides(path string, site *SiteConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read overrides: %w", err)
	}

	if err := yaml.Unmarshal(data, site); err != nil {
		return fmt.Errorf("failed to parse YAML overrides %s: %w", path, err)
	}

	return nil
}

func resolveGeneratorVersion(manifestPath string) string {
	if manifestPath == "" {
		log.Printf("Warning: no manifest configured, generator version is %q", UnknownVersion)
		return UnknownVersion
	}

	manifest, err := ReadManifest(manifestPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: manifest %s not found, generator version is %q", manifestPath, UnknownVersion)
		} else {
			log.Printf("Warning: %v", err)
		}
		return UnknownVersion
	}

	version, ok := manifest.GeneratorVersion()
	if !ok {
		log.Printf("Warning: %s does not declare %s, generator version is %q", manifestPath, GeneratorPackage, UnknownVersion)
	}
	return version
}
