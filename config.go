package main

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

func defaultConfig() Config {
	return Config{
		Addr:         defaultAddr,
		Timeout:      defaultTimeout,
		UserAgent:    defaultUserAgent,
		MaxBodyBytes: defaultMaxBody,
	}
}

// loadConfig layers defaults, the optional YAML file at path and the
// environment. Flags are applied by the caller.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path != "" {
		if err := readConfigFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if v := getenv("M3U_ADDR", ""); v != "" {
		cfg.Addr = v
	} else if port := getenv("PORT", ""); port != "" {
		cfg.Addr = ":" + port
	}
	return cfg, nil
}

func readConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

func (c Config) validate() error {
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		return errors.New("user agent must not be empty")
	}
	if c.Addr == "" {
		return errors.New("listen address must not be empty")
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
