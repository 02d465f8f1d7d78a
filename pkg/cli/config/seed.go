package config

import (
	_ "embed"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed holds the initial employee data configuration
type Seed struct {
	File     string
	Disabled bool
}

type seedFile struct {
	Employees model.Employees `yaml:"employees"`
}

// Flags returns CLI flags for Seed configuration
func (s *Seed) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "seed-file",
			Usage:       "YAML file with employees loaded into an empty store (built-in sample organization if omitted)",
			Category:    "Seed",
			Sources:     cli.EnvVars("ORGCHART_SEED_FILE"),
			Destination: &s.File,
		},
		&cli.BoolFlag{
			Name:        "no-seed",
			Usage:       "Start with an empty store",
			Category:    "Seed",
			Sources:     cli.EnvVars("ORGCHART_NO_SEED"),
			Destination: &s.Disabled,
		},
	}
}

// Load returns the seed employees. Nil means seeding is disabled.
func (s *Seed) Load() (model.Employees, error) {
	if s.Disabled {
		return nil, nil
	}

	data := defaultSeed
	if s.File != "" {
		raw, err := os.ReadFile(s.File)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read seed file", goerr.V("path", s.File))
		}
		data = raw
	}

	return ParseSeed(data)
}

// ParseSeed decodes and validates seed YAML
func ParseSeed(data []byte) (model.Employees, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse seed YAML")
	}

	for _, e := range f.Employees {
		if err := e.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid seed employee", goerr.V("id", e.ID))
		}
	}
	if !model.BuildHierarchy(f.Employees).IsForest() {
		return nil, goerr.Wrap(model.ErrCyclicManager, "seed is not an acyclic forest")
	}

	return f.Employees, nil
}

// LogValue returns structured log value
func (s Seed) LogValue() slog.Value {
	file := s.File
	if file == "" {
		file = "(built-in)"
	}
	return slog.GroupValue(
		slog.String("file", file),
		slog.Bool("disabled", s.Disabled),
	)
}
