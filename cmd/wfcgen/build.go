package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wfc/builder"
	"github.com/katalvlaran/wfc/constraint"
	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/pathconstraint"
	"github.com/katalvlaran/wfc/ruleset"
	"github.com/katalvlaran/wfc/tile"
	"github.com/katalvlaran/wfc/tileset"
	"github.com/katalvlaran/wfc/topology"
)

// runConfig collects the flags generate and step share.
type runConfig struct {
	rulesPath string

	width, height, depth int

	periodicX, periodicY, periodicZ bool

	seed      int64
	backtrack int
	pathTiles string
	counts    []string
}

func registerCommonFlags(cmd *cobra.Command, cfg *runConfig) {
	cmd.Flags().StringVar(&cfg.rulesPath, "rules", "", "path to a YAML rule file (required)")
	cmd.Flags().IntVar(&cfg.width, "width", 0, "grid width (required)")
	cmd.Flags().IntVar(&cfg.height, "height", 0, "grid height (required)")
	cmd.Flags().IntVar(&cfg.depth, "depth", 1, "grid depth; 1 models a 2-D grid")
	cmd.Flags().BoolVar(&cfg.periodicX, "periodic-x", false, "wrap the x axis")
	cmd.Flags().BoolVar(&cfg.periodicY, "periodic-y", false, "wrap the y axis")
	cmd.Flags().BoolVar(&cfg.periodicZ, "periodic-z", false, "wrap the z axis")
	cmd.Flags().Int64Var(&cfg.seed, "seed", 1, "PRNG seed")
	cmd.Flags().IntVar(&cfg.backtrack, "backtrack", 0, "backtrack depth: -1 unbounded, 0 disabled, >0 bounded")
	cmd.Flags().StringVar(&cfg.pathTiles, "path", "", "comma-separated tile names that must form a connected path")
	cmd.Flags().StringArrayVar(&cfg.counts, "count", nil, "tile=K:cmp cardinality bound (cmp: atmost|atleast|exactly), repeatable")

	_ = cmd.MarkFlagRequired("rules")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
}

// build reads cfg.rulesPath and assembles the tile-level propagator that
// backs both generate and step.
func build(cfg *runConfig) (*tile.TilePropagator[string], *topology.Topology, error) {
	data, err := os.ReadFile(cfg.rulesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("wfcgen: reading rule file: %w", err)
	}

	dirs := direction.Cartesian2D()
	if cfg.depth > 1 {
		dirs = direction.Cartesian3D()
	}

	b := builder.New[string](dirs)
	doc, err := ruleset.Load(data, b)
	if err != nil {
		return nil, nil, err
	}

	m, err := b.Build()
	if err != nil {
		return nil, nil, err
	}

	topo, err := topology.New(dirs, topology.Dims{Width: cfg.width, Height: cfg.height, Depth: cfg.depth},
		topology.Periodic{X: cfg.periodicX, Y: cfg.periodicY, Z: cfg.periodicZ}, nil)
	if err != nil {
		return nil, nil, err
	}

	constraints, err := buildConstraints(cfg, b, doc, m, topo, dirs)
	if err != nil {
		return nil, nil, err
	}

	tp, err := tile.FromBuilder(b, m, topo, tile.Options{
		BacktrackDepth: cfg.backtrack,
		Constraints:    constraints,
		Seed:           uint64(cfg.seed),
	})
	if err != nil {
		return nil, nil, err
	}

	return tp, topo, nil
}

func buildConstraints(cfg *runConfig, b *builder.Builder[string], doc *ruleset.Document, m *model.PatternModel, topo *topology.Topology, dirs *direction.Set) ([]constraint.Constraint, error) {
	var constraints []constraint.Constraint

	if cfg.pathTiles != "" {
		pc, err := buildPathConstraint(cfg.pathTiles, b, doc, m, topo, dirs)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, pc)
	}

	for _, spec := range cfg.counts {
		cc, err := parseCountSpec(spec, b, m)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, cc)
	}

	return constraints, nil
}

func buildPathConstraint(spec string, b *builder.Builder[string], doc *ruleset.Document, m *model.PatternModel, topo *topology.Topology, dirs *direction.Set) (constraint.Constraint, error) {
	names := strings.Split(spec, ",")
	patterns := make([]model.PatternID, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		p, ok := b.PatternForTile(n)
		if !ok {
			return nil, fmt.Errorf("wfcgen: --path names unknown tile %q", n)
		}
		patterns = append(patterns, p)
	}
	pathSet := tileset.New(patterns, m.PatternCount())

	if dirs.Is2DCartesian() && topo.Dims().Depth == 1 {
		exitSets, err := doc.ExitSets(b, m, dirs)
		if err != nil {
			return nil, err
		}
		return pathconstraint.NewEdgedPathConstraint(topo, pathSet, exitSets, nil)
	}
	return pathconstraint.NewPathConstraint(topo, pathSet, nil)
}

// parseCountSpec parses "tile=K:cmp" into a constraint.CountConstraint.
func parseCountSpec(spec string, b *builder.Builder[string], m *model.PatternModel) (*constraint.CountConstraint, error) {
	nameAndRest := strings.SplitN(spec, "=", 2)
	if len(nameAndRest) != 2 {
		return nil, fmt.Errorf("wfcgen: --count %q must be tile=K:cmp", spec)
	}
	kAndCmp := strings.SplitN(nameAndRest[1], ":", 2)
	if len(kAndCmp) != 2 {
		return nil, fmt.Errorf("wfcgen: --count %q must be tile=K:cmp", spec)
	}

	k, err := strconv.Atoi(kAndCmp[0])
	if err != nil {
		return nil, fmt.Errorf("wfcgen: --count %q: bad K: %w", spec, err)
	}

	var cmp constraint.Comparison
	switch strings.ToLower(kAndCmp[1]) {
	case "atmost":
		cmp = constraint.AtMost
	case "atleast":
		cmp = constraint.AtLeast
	case "exactly":
		cmp = constraint.Exactly
	default:
		return nil, fmt.Errorf("wfcgen: --count %q: cmp must be atmost, atleast, or exactly", spec)
	}

	patterns := make([]model.PatternID, 0, 1)
	for _, tileName := range strings.Split(nameAndRest[0], "+") {
		p, ok := b.PatternForTile(strings.TrimSpace(tileName))
		if !ok {
			return nil, fmt.Errorf("wfcgen: --count names unknown tile %q", tileName)
		}
		patterns = append(patterns, p)
	}
	set := tileset.New(patterns, m.PatternCount())

	return constraint.NewCountConstraint(set, k, cmp, false), nil
}
