package main

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/programLyrique/analysr/count"
)

const configFile = "analysr.yml"

type settings struct {
	Rscript  string              `yaml:"Rscript"`
	Jobs     int                 `yaml:"Jobs"`
	Simplify bool                `yaml:"Simplify"`
	LogLevel string              `yaml:"LogLevel"`
	Metrics  count.MetricsConfig `yaml:"Metrics"`
}

func defaultSettings() settings {
	return settings{
		Rscript:  "Rscript",
		Jobs:     4,
		LogLevel: "INFO",
		Metrics: count.MetricsConfig{
			Namespace: "analysr",
			Subsystem: "translate",
		},
	}
}

// loadSettings reads path over the defaults. A missing file is only an
// error when the user named it explicitly.
func loadSettings(path string, explicit bool) (settings, error) {
	s := defaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return s, nil
		}
		return s, err
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, err
	}
	if s.Jobs < 1 {
		s.Jobs = 1
	}
	return s, nil
}

func writeSettings(path string, s settings) error {
	out, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	fi, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer fi.Close()

	_, err = fi.Write(out)
	return err
}
