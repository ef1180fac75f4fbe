package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"fractionbom/pkg/errors"
	"fractionbom/pkg/fraction"
)

// configFile is the optional per-tree configuration file looked up in the
// scan root.
const configFile = "fractionbom.toml"

// fileConfig mirrors fractionbom.toml. Every field is optional; unset
// convention fields fall back to the registry defaults.
type fileConfig struct {
	RootGroup    string `toml:"root-group"`
	RootArtifact string `toml:"root-artifact"`
	SPIGroup     string `toml:"spi-group"`
	SPIArtifact  string `toml:"spi-artifact"`

	FractionSuffix string `toml:"fraction-suffix"`
	SourceSuffix   string `toml:"source-suffix"`
	DetectDir      string `toml:"detect-dir"`
	ModuleConf     string `toml:"module-conf"`
	ManifestPath   string `toml:"manifest-path"`

	Template string `toml:"template"`
	Output   string `toml:"output"`
}

// loadConfig reads fractionbom.toml from dir. A missing file yields the zero
// config; a present but malformed file is an error, not something to guess
// around.
func loadConfig(dir string) (fileConfig, error) {
	var cfg fileConfig
	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot read %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot parse %s", path)
	}
	return cfg, nil
}

// registryConfig converts the file config into a registry configuration.
func (c fileConfig) registryConfig(logger *log.Logger) fraction.Config {
	return fraction.Config{
		RootModule:     fraction.GroupArtifact{Group: c.RootGroup, Artifact: c.RootArtifact},
		SPIModule:      fraction.GroupArtifact{Group: c.SPIGroup, Artifact: c.SPIArtifact},
		FractionSuffix: c.FractionSuffix,
		SourceSuffix:   c.SourceSuffix,
		DetectDir:      c.DetectDir,
		ModuleConf:     c.ModuleConf,
		ManifestPath:   c.ManifestPath,
		Logger:         logger,
	}
}
