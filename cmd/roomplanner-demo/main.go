// Command roomplanner-demo exercises the roomplanner core against a
// synthetic room loaded from a YAML scenario fixture, in the same spirit
// as the teacher's top-level examples/ directory of runnable snippets,
// upgraded to a proper subcommand CLI.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roomplanner/internal/demo"
	"github.com/katalvlaran/roomplanner/layout"
	"github.com/katalvlaran/roomplanner/mincut"
	"github.com/katalvlaran/roomplanner/terrain"
	"github.com/katalvlaran/roomplanner/tile"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var scenarioPath string

	root := &cobra.Command{
		Use:   "roomplanner-demo",
		Short: "Exercise the roomplanner core against a scenario fixture",
	}
	root.PersistentFlags().StringVar(&scenarioPath, "scenario", "cmd/roomplanner-demo/scenarios/default.yaml", "path to a YAML scenario fixture")

	root.AddCommand(newMincutCmd(&scenarioPath))
	root.AddCommand(newRampartCmd(&scenarioPath))
	root.AddCommand(newLayoutCmd(&scenarioPath))
	root.AddCommand(newServeCmd(&scenarioPath))

	return root
}

func newMincutCmd(scenarioPath *string) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "mincut",
		Short: "Compute the minimum rampart set for the scenario's protected tiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := demo.LoadScenario(*scenarioPath)
			if err != nil {
				return err
			}

			opts := mincut.DefaultDriverOptions()
			opts.Verbose = verbose
			cut := mincut.GetCutTiles(s.TerrainQuery(), s.ProtectedPositions(), nil, opts)

			fmt.Printf("%s: %d rampart tiles\n", s.Name, len(cut))
			for _, p := range cut {
				fmt.Printf("  (%d,%d)\n", p.X, p.Y)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each pipeline phase")
	return cmd
}

func newRampartCmd(scenarioPath *string) *cobra.Command {
	var svgPath string
	cmd := &cobra.Command{
		Use:   "rampart",
		Short: "Compute ramparts and exposed-tile cost matrix, optionally exporting SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := demo.LoadScenario(*scenarioPath)
			if err != nil {
				return err
			}

			ramparts, cost := layout.Calculate(s.TerrainQuery(), s.ProtectedPositions(), s.Controller.Pos(), mincut.DefaultDriverOptions())
			exposed := 0
			for y := range cost {
				for x := range cost[y] {
					if cost[y][x] == 0xff {
						exposed++
					}
				}
			}
			fmt.Printf("%s: %d rampart tiles, %d exposed tiles\n", s.Name, len(ramparts), exposed)

			if svgPath != "" {
				return writeSVG(svgPath, s, ramparts, nil)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&svgPath, "svg", "", "write an SVG render of the ramparts to this path")
	return cmd
}

func newLayoutCmd(scenarioPath *string) *cobra.Command {
	var verbose bool
	var svgPath string
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Run the full cluster placement search for the scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := demo.LoadScenario(*scenarioPath)
			if err != nil {
				return err
			}

			result, err := runLayout(s, verbose)
			if result != nil {
				for k := layout.Spawn; k.String() != "unknown"; k++ {
					if n := len(result.Get(k)); n > 0 {
						fmt.Printf("  %-10s %d\n", k, n)
					}
				}
			}
			if err != nil {
				return err
			}

			if svgPath != "" {
				cut := mincut.GetCutTiles(s.TerrainQuery(), s.ProtectedPositions(), nil, mincut.DefaultDriverOptions())
				return writeSVG(svgPath, s, cut, result)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each cluster commit")
	cmd.Flags().StringVar(&svgPath, "svg", "", "write an SVG render of the layout to this path")
	return cmd
}

func runLayout(s *demo.Scenario, verbose bool) (*layout.Layout, error) {
	grid, err := classify(s)
	if err != nil {
		return nil, err
	}

	return layout.BuildLayout(
		grid,
		s.Resources(),
		s.Mineral.ResourcePos(),
		s.Controller.Pos(),
		demo.StraightLinePathFinder{},
		demo.EmptyLookup{},
		demo.ConsoleMemory{},
		layout.PlannerOptions{Verbose: verbose},
	)
}

func newServeCmd(scenarioPath *string) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the layout search once, streaming phase progress to connected browsers over a websocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := demo.LoadScenario(*scenarioPath)
			if err != nil {
				return err
			}

			bc := demo.NewBroadcaster()
			go bc.Run()
			http.Handle("/progress", bc)

			go func() {
				bc.Send("classify", s.Name)
				cut := mincut.GetCutTiles(s.TerrainQuery(), s.ProtectedPositions(), nil, mincut.DefaultDriverOptions())
				bc.Send("mincut", fmt.Sprintf("%d rampart tiles", len(cut)))

				result, err := runLayout(s, false)
				if err != nil {
					bc.Send("error", err.Error())
					return
				}
				bc.Send("done", fmt.Sprintf("%d structures placed", countStructures(result)))
			}()

			fmt.Printf("serving progress on ws://%s/progress\n", addr)
			return http.ListenAndServe(addr, nil)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8089", "address to listen on")
	return cmd
}

func countStructures(l *layout.Layout) int {
	if l == nil {
		return 0
	}
	total := 0
	for k := layout.Spawn; k.String() != "unknown"; k++ {
		total += len(l.Get(k))
	}
	return total
}

func classify(s *demo.Scenario) (*tile.Grid, error) {
	grid, err := terrain.Classify(s.TerrainQuery(), tile.FullRoom())
	if err != nil {
		return nil, err
	}
	return &grid, nil
}

func writeSVG(path string, s *demo.Scenario, ramparts []tile.Pos, result *layout.Layout) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("roomplanner-demo: write svg: %w", err)
	}
	defer f.Close()

	demo.RenderSVG(f, wallsFrom(s.TerrainQuery()), ramparts, result)
	return nil
}

func wallsFrom(q terrain.Query) func(x, y int) bool {
	return func(x, y int) bool { return q(x, y) != 0 }
}
