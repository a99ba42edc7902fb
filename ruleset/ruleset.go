// Package ruleset loads a YAML tile/adjacency rule document into
// builder.Builder calls, so a large tile set can be declared as data
// instead of hand-written Go. It is an adapter over builder and
// pathconstraint's exit-set tables, not a new core algorithm.
package ruleset

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wfc/builder"
	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/tileset"
)

// Tile is one entry of a rule document's tiles list.
type Tile struct {
	Name   string   `yaml:"name"`
	Weight float64  `yaml:"weight"`
	Exits  []string `yaml:"exits"`
}

// Adjacency is one entry of a rule document's adjacency list: every tile in
// To may sit at the neighbor reached by Dir from every tile in From.
type Adjacency struct {
	From []string `yaml:"from"`
	To   []string `yaml:"to"`
	Dir  [3]int   `yaml:"dir"`
}

// Document is a parsed, validated rule file.
type Document struct {
	Tiles     []Tile      `yaml:"tiles"`
	Adjacency []Adjacency `yaml:"adjacency"`
}

var directionVectors = map[string]direction.Vector{
	"east":  {DX: 1, DY: 0, DZ: 0},
	"west":  {DX: -1, DY: 0, DZ: 0},
	"south": {DX: 0, DY: 1, DZ: 0},
	"north": {DX: 0, DY: -1, DZ: 0},
}

// Load parses data as a rule document and replays it against b: one
// SetFrequency call per declared tile (registering every tile even if it
// only ever appears in an exits list, never in adjacency), then one
// AddAdjacency call per adjacency entry. Returns the parsed Document so the
// caller can later build exit-set tables with ExitSets once b.Build has
// produced a PatternModel.
func Load(data []byte, b *builder.Builder[string]) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ruleset: parsing rule document: %w", err)
	}
	if len(doc.Tiles) == 0 {
		return nil, ErrNoTiles
	}

	known := make(map[string]bool, len(doc.Tiles))
	for _, t := range doc.Tiles {
		known[t.Name] = true
		if err := b.SetFrequency(t.Name, t.Weight); err != nil {
			return nil, err
		}
		seen := make(map[string]bool, len(t.Exits))
		for _, dn := range t.Exits {
			if _, ok := directionVectors[dn]; !ok {
				return nil, fmt.Errorf("ruleset: tile %q: %w: %q", t.Name, ErrUnknownDirectionName, dn)
			}
			if seen[dn] {
				return nil, fmt.Errorf("ruleset: tile %q: %w: %q", t.Name, ErrDuplicateExit, dn)
			}
			seen[dn] = true
		}
	}

	for i, adj := range doc.Adjacency {
		for _, n := range adj.From {
			if !known[n] {
				return nil, fmt.Errorf("ruleset: adjacency[%d] from: %w: %q", i, ErrUnknownTile, n)
			}
		}
		for _, n := range adj.To {
			if !known[n] {
				return nil, fmt.Errorf("ruleset: adjacency[%d] to: %w: %q", i, ErrUnknownTile, n)
			}
		}
		if err := b.AddAdjacency(adj.From, adj.To, adj.Dir[0], adj.Dir[1], adj.Dir[2]); err != nil {
			return nil, fmt.Errorf("ruleset: adjacency[%d]: %w", i, err)
		}
	}

	return &doc, nil
}

// ExitSets compiles this document's per-tile exits lists into one
// tileset.Set per direction in dirs: the returned slice's entry at index d
// holds every pattern whose tile lists d among its exits. b must be the
// same builder Load populated, and m must be the PatternModel b.Build
// produced.
func (d *Document) ExitSets(b *builder.Builder[string], m *model.PatternModel, dirs *direction.Set) ([]*tileset.Set, error) {
	perDir := make([][]model.PatternID, dirs.Count())
	for _, t := range d.Tiles {
		pat, ok := b.PatternForTile(t.Name)
		if !ok {
			continue
		}
		for _, dn := range t.Exits {
			v := directionVectors[dn]
			dIdx, ok := dirs.Find(v.DX, v.DY, v.DZ)
			if !ok {
				return nil, fmt.Errorf("ruleset: tile %q: %w: %q", t.Name, ErrBadAdjacencyDir, dn)
			}
			perDir[int(dIdx)] = append(perDir[int(dIdx)], pat)
		}
	}

	out := make([]*tileset.Set, dirs.Count())
	for i := range out {
		out[i] = tileset.New(perDir[i], m.PatternCount())
	}
	return out, nil
}

// PathTiles returns the tile names carrying at least one exit, a common
// shorthand for building the path tile set passed to pathconstraint.
func (d *Document) PathTiles() []string {
	var names []string
	for _, t := range d.Tiles {
		if len(t.Exits) > 0 {
			names = append(names, t.Name)
		}
	}
	return names
}
