package sat

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// Config holds the executable paths of the external solvers. Empty paths fall back to the binary name.
type Config struct {
	KissatPath        string `mapstructure:"kissatPath"`
	CadicalPath       string `mapstructure:"cadicalPath"`
	CryptominisatPath string `mapstructure:"cryptominisatPath"`
	MinisatPath       string `mapstructure:"minisatPath"`
	GlucoseSimpPath   string `mapstructure:"glucoseSimpPath"`
	SlimePath         string `mapstructure:"slimePath"`
	OrtoolsatPath     string `mapstructure:"ortoolsatPath"`
}

var config Config

// SetConfig installs cfg as the configuration used by the external solvers
func SetConfig(cfg Config) {
	config = cfg
}

// LoadConfig reads a config.json file. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "cannot read config file")
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Config{}, errors.Wrapf(err, "cannot parse config file %v", path)
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(inputJson); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config file %v", path)
	}
	return cfg, nil
}

func executablePath(solver string) string {
	path := map[string]string{
		"kissat":        config.KissatPath,
		"cadical":       config.CadicalPath,
		"cryptominisat": config.CryptominisatPath,
		"minisat":       config.MinisatPath,
		"glucose-simp":  config.GlucoseSimpPath,
		"slime":         config.SlimePath,
		"ortoolsat":     config.OrtoolsatPath,
	}[solver]
	if path == "" {
		return solver
	}
	return path
}
