package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/roomplanner/flow"
)

// DinicSuite exercises flow.MaxFlow under the scenarios spec.md §8 names,
// plus a cross-check against the independent Edmonds-Karp implementation.
type DinicSuite struct {
	suite.Suite
}

func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}

func (s *DinicSuite) TestSingleEdge() {
	g := flow.NewGraph(2)
	g.AddEdge(0, 1, 7)

	mf, err := flow.MaxFlow(g, 0, 1, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7, mf)
}

func (s *DinicSuite) TestMultiPath() {
	g := flow.NewGraph(3)
	g.AddEdge(0, 1, 5)
	g.AddEdge(0, 2, 4)
	g.AddEdge(2, 1, 3)

	mf, err := flow.MaxFlow(g, 0, 1, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 8, mf)
}

func (s *DinicSuite) TestSameSourceSink() {
	g := flow.NewGraph(2)
	mf, err := flow.MaxFlow(g, 0, 0, flow.DefaultOptions())
	require.ErrorIs(s.T(), err, flow.ErrSameSourceSink)
	require.Equal(s.T(), -1, mf)
}

func (s *DinicSuite) TestDisconnected() {
	g := flow.NewGraph(2)
	mf, err := flow.MaxFlow(g, 0, 1, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, mf)
}

// TestAgreesWithEdmondsKarp builds a small random-ish unit-capacity DAG
// and checks that MaxFlow and MaxFlowEdmondsKarp return the same value,
// since they must be computing the same quantity from two different
// algorithms.
func (s *DinicSuite) TestAgreesWithEdmondsKarp() {
	build := func() *flow.Graph {
		g := flow.NewGraph(6)
		g.AddEdge(0, 1, 1)
		g.AddEdge(0, 2, 1)
		g.AddEdge(1, 3, 1)
		g.AddEdge(2, 3, 1)
		g.AddEdge(1, 4, 1)
		g.AddEdge(3, 5, 1)
		g.AddEdge(4, 5, 1)

		return g
	}

	dinicFlow, err := flow.MaxFlow(build(), 0, 5, flow.DefaultOptions())
	require.NoError(s.T(), err)

	ekFlow, err := flow.MaxFlowEdmondsKarp(build(), 0, 5)
	require.NoError(s.T(), err)

	require.Equal(s.T(), ekFlow, dinicFlow)
}

// TestMinCutEqualsMaxFlow checks spec.md §8: the cardinality of the cut
// equals the value of max_flow(SOURCE, SINK).
func (s *DinicSuite) TestMinCutEqualsMaxFlow() {
	const inf = 1 << 20
	g := flow.NewGraph(4)
	g.AddEdge(0, 1, 1) // unit-capacity cut edges, mirroring TOP->BOT edges
	g.AddEdge(0, 2, 1)
	g.AddEdge(1, 3, inf)
	g.AddEdge(2, 3, inf)

	mf, err := flow.MaxFlow(g, 0, 3, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, mf)

	cut := flow.CutTiles(g, 0)
	require.Len(s.T(), cut, mf)
}
