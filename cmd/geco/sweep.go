package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geco/catalog"
	"github.com/katalvlaran/geco/generator"
)

// SweepConfig is the YAML layout read by `geco sweep`.
//
//	variant: setcover/yang
//	seeds: [1, 2, 3]
//	fixed: {}
//	grid:
//	  - name: m
//	    values: [50, 100]
//	permute_seed: 0
//	workers: 4
//	out: instances
type SweepConfig struct {
	Variant     string         `yaml:"variant"`
	Seeds       []int64        `yaml:"seeds"`
	Fixed       map[string]any `yaml:"fixed"`
	Grid        []SweepAxis    `yaml:"grid"`
	PermuteSeed int64          `yaml:"permute_seed"`
	Workers     int            `yaml:"workers"`
	Out         string         `yaml:"out"`
}

// SweepAxis is one grid dimension. Axes keep their file order; the last one
// varies fastest.
type SweepAxis struct {
	Name   string `yaml:"name"`
	Values []any  `yaml:"values"`
}

func loadSweepConfig(path string) (SweepConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SweepConfig{}, err
	}
	var cfg SweepConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SweepConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Variant == "" {
		return SweepConfig{}, fmt.Errorf("%s: variant is required", path)
	}
	if len(cfg.Seeds) == 0 {
		return SweepConfig{}, fmt.Errorf("%s: at least one seed is required", path)
	}
	if cfg.Out == "" {
		cfg.Out = "."
	}
	return cfg, nil
}

func (a *app) sweepCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Generate every grid point of a YAML sweep for every seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSweepConfig(path)
			if err != nil {
				return err
			}
			v, err := catalog.Lookup(cfg.Variant)
			if err != nil {
				return err
			}
			axes := make([]generator.Axis, len(cfg.Grid))
			for i, ax := range cfg.Grid {
				axes[i] = generator.Axis{Name: ax.Name, Values: ax.Values}
			}
			points, err := generator.Points(axes...)
			if err != nil {
				return err
			}

			for pt := range points {
				raw := make(catalog.Args, len(cfg.Fixed)+len(axes))
				for k, val := range cfg.Fixed {
					raw[k] = val
				}
				for k, val := range pt.Map() {
					raw[k] = val
				}
				resolved, err := v.Resolve(raw)
				if err != nil {
					return err
				}
				paths, err := a.run(cmd.Context(), job{
					variant:     v,
					args:        resolved,
					seeds:       cfg.Seeds,
					permuteSeed: cfg.PermuteSeed,
					workers:     cfg.Workers,
					dir:         cfg.Out,
					label:       pointLabel(pt),
				})
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "Sweep YAML file")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func pointLabel(pt generator.Point) string {
	parts := make([]string, 0, len(pt.Names()))
	for _, name := range pt.Names() {
		val, _ := pt.Get(name)
		parts = append(parts, fmt.Sprintf("%s=%v", name, val))
	}
	return strings.Join(parts, "_")
}
