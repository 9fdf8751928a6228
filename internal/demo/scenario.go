// Package demo wires the roomplanner core into a runnable binary: a YAML
// scenario loader, an SVG renderer, and a websocket progress server, in
// the same "small supporting package behind cmd/" shape the teacher uses
// for its top-level examples/ snippets.
package demo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roomplanner/layout"
	"github.com/katalvlaran/roomplanner/tile"
)

// Scenario is the YAML-loadable description of a synthetic room: its
// wall mask, the tiles to protect, and the resource/controller
// coordinates BuildLayout needs.
type Scenario struct {
	Name       string         `yaml:"name"`
	Walls      []PosYAML      `yaml:"walls"`
	Protected  []PosYAML      `yaml:"protected"`
	Sources    []ResourceYAML `yaml:"sources"`
	Mineral    ResourceYAML   `yaml:"mineral"`
	Controller PosYAML        `yaml:"controller"`
}

// PosYAML is the YAML-friendly mirror of tile.Pos.
type PosYAML struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ResourceYAML is the YAML-friendly mirror of layout.ResourcePos.
type ResourceYAML struct {
	ID string  `yaml:"id"`
	At PosYAML `yaml:"at"`
}

// Pos converts to a tile.Pos.
func (p PosYAML) Pos() tile.Pos { return tile.Pos{X: p.X, Y: p.Y} }

// ResourcePos converts to a layout.ResourcePos.
func (r ResourceYAML) ResourcePos() layout.ResourcePos {
	return layout.ResourcePos{ID: r.ID, Pos: r.At.Pos()}
}

// LoadScenario reads and parses a scenario fixture from path.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("demo: read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("demo: parse scenario: %w", err)
	}

	return &s, nil
}

// TerrainQuery builds a terrain.Query closure over the scenario's wall
// mask: any tile listed under walls returns a non-zero terrain code,
// every other tile is open ground.
func (s *Scenario) TerrainQuery() func(x, y int) int {
	walls := make(map[tile.Pos]bool, len(s.Walls))
	for _, w := range s.Walls {
		walls[w.Pos()] = true
	}

	return func(x, y int) int {
		if walls[tile.Pos{X: x, Y: y}] {
			return 1
		}
		return 0
	}
}

// ProtectedPositions converts the scenario's protected list to tile.Pos.
func (s *Scenario) ProtectedPositions() []tile.Pos {
	out := make([]tile.Pos, len(s.Protected))
	for i, p := range s.Protected {
		out[i] = p.Pos()
	}
	return out
}

// Resources converts the scenario's sources list to layout.ResourcePos.
func (s *Scenario) Resources() []layout.ResourcePos {
	out := make([]layout.ResourcePos, len(s.Sources))
	for i, r := range s.Sources {
		out[i] = r.ResourcePos()
	}
	return out
}
