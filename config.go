package unitdoc

// Config holds the settings of a documentation build.
type Config struct {
	// Title is shown in the sidebar, page titles and the reference heading.
	Title string `yaml:"title"`

	// Subtitle is shown under the title in the sidebar.
	Subtitle string `yaml:"subtitle"`

	// Version is printed on the index page when set.
	Version string `yaml:"version"`

	// Include and Exclude are doublestar globs matched against input paths
	// relative to the input directory.
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`

	// Reference is the file name of the Markdown reference, written next to
	// the HTML output directory.
	Reference string `yaml:"reference"`

	// Locale is the BCP 47 tag used to order unit names.
	Locale string `yaml:"locale"`

	// Markdown enables the per-unit Markdown export.
	Markdown bool `yaml:"markdown"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Title:     "API Reference",
		Subtitle:  "API Reference",
		Include:   []string{"**/*.xml"},
		Reference: "REFERENCE.md",
		Locale:    "en",
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.Title == "" {
		return Errorf(EINVALID, "config title required")
	}
	if len(c.Include) == 0 {
		return Errorf(EINVALID, "config requires at least one include pattern")
	}
	if c.Reference == "" {
		return Errorf(EINVALID, "config reference file name required")
	}
	return nil
}
