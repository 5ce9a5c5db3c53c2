package cfg

import (
	"cmp"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type rawCfg struct {
	// Site overrides
	URL string `long:"url" env:"URL" description:"Canonical site URL (defaults to https://blog.bott.im/ when empty)"`

	// Inputs
	ManifestPath  string `long:"manifest" env:"MANIFEST_PATH" default:"./package.json" description:"Dependency manifest used to resolve the generator version"`
	OverridesPath string `long:"overrides" env:"OVERRIDES_PATH" description:"Optional YAML file merged over the built-in site configuration"`

	// Output
	Format     string `long:"format" env:"OUTPUT_FORMAT" default:"json" choice:"json" choice:"yaml" description:"Output encoding"`
	OutputPath string `long:"output" short:"o" env:"OUTPUT_PATH" description:"Write the configuration to this file instead of stdout"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

// Load parses the process arguments and environment.
// It returns nil, nil when help was requested.
func Load() (*Cfg, error) {
	return LoadArgs(os.Args[1:])
}

func LoadArgs(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		URL:           raw.URL,
		ManifestPath:  raw.ManifestPath,
		OverridesPath: raw.OverridesPath,
		Format:        raw.Format,
		OutputPath:    raw.OutputPath,
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
