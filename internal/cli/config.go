// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/apsp/apsp"
	"github.com/katalvlaran/apsp/matrix"
)

const defaultConfigFile = "apsp.toml"

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var errUnknownFormat = errors.New("cli: unknown output format")

// Config is the apsp.toml layout. Unset keys keep their defaults.
type Config struct {
	Algorithm     string `toml:"algorithm"`
	NegativeCheck *bool  `toml:"negative_check"`
	Format        string `toml:"format"`
	NoEdge        string `toml:"no_edge"`
}

func defaultConfig() Config {
	check := true
	return Config{
		Algorithm:     apsp.AlgorithmFloyd.String(),
		NegativeCheck: &check,
		Format:        formatText,
		NoEdge:        matrix.TokenNoEdge,
	}
}

// loadConfig merges the TOML file at path over the defaults. An empty path
// means ./apsp.toml, which may be absent; an explicit path must exist.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	var file Config
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if file.Algorithm != "" {
		cfg.Algorithm = file.Algorithm
	}
	if file.NegativeCheck != nil {
		cfg.NegativeCheck = file.NegativeCheck
	}
	if file.Format != "" {
		cfg.Format = file.Format
	}
	if file.NoEdge != "" {
		cfg.NoEdge = file.NoEdge
	}

	if _, err = apsp.ParseAlgorithm(cfg.Algorithm); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if _, err = parseFormat(cfg.Format); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func parseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, errUnknownFormat)
	}
}
