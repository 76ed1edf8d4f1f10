// Package yaml loads unitdoc configuration files with gopkg.in/yaml.v3.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/unitdoc"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the YAML file at path over the default configuration.
// A missing file yields the defaults. Unknown keys are rejected.
func LoadConfig(path string) (*unitdoc.Config, error) {
	cfg := unitdoc.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, unitdoc.Errorf(unitdoc.EINVALID, "parsing config %s: %v", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
