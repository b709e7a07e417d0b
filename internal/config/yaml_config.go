package config

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// Values set here override the environment.
type YAMLConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Predictor PredictorConfig `yaml:"predictor"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig defines listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatasetConfig points at the local name_age file.
type DatasetConfig struct {
	Path string `yaml:"path"`
}

// PredictorConfig defines the remote age prediction service.
type PredictorConfig struct {
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"` // Go duration, e.g. "5s"
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	Origins []string `yaml:"origins"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFile loads the YAML configuration from path.
func LoadYAMLConfigFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Apply overlays non-empty YAML values onto cfg.
func (y *YAMLConfig) Apply(cfg *Config) error {
	if y == nil {
		return nil
	}
	if y.Server.Addr != "" {
		cfg.ServerAddr = y.Server.Addr
	}
	if y.Dataset.Path != "" {
		cfg.DatasetPath = y.Dataset.Path
	}
	if y.Predictor.URL != "" {
		cfg.PredictorURL = y.Predictor.URL
	}
	if y.Predictor.Timeout != "" {
		d, err := time.ParseDuration(y.Predictor.Timeout)
		if err != nil {
			return err
		}
		cfg.PredictorTimeout = d
	}
	if len(y.CORS.Origins) > 0 {
		cfg.CORSOrigins = strings.Join(y.CORS.Origins, ",")
	}
	return nil
}
