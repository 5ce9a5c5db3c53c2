package cfg

type Cfg struct {
	// Site overrides
	URL string

	// Inputs
	ManifestPath  string
	OverridesPath string

	// Output
	Format     string
	OutputPath string

	// Application metadata
	Debug   bool
	Version string
}
