package cli_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/densflow/internal/cli"
	"github.com/katalvlaran/densflow/network"
)

const diamondTOML = `
source = 0
sink = 3
capacity = [
  [0, 3, 2, 0],
  [0, 0, 0, 2],
  [0, 0, 0, 3],
  [0, 0, 0, 0],
]
`

// CommandSuite runs the cobra commands end to end against temp files.
type CommandSuite struct {
	suite.Suite
	dir string
}

func (s *CommandSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *CommandSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	require.NoError(s.T(), os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *CommandSuite) execute(args ...string) (string, error) {
	c := cli.New(io.Discard, cli.LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (s *CommandSuite) TestSolve() {
	path := s.write("diamond.toml", diamondTOML)
	out, err := s.execute("solve", path, "--verify", "--check", "--prune")
	require.NoError(s.T(), err)
	require.Contains(s.T(), out, "max flow: 4")
	require.Contains(s.T(), out, "min cut: 4")
	require.Contains(s.T(), out, "0 → 2  2")
	require.Contains(s.T(), out, "verified with Edmonds–Karp")
}

func (s *CommandSuite) TestSolveDefaultsEndpoints() {
	path := s.write("edge.toml", "capacity = [[0, 7], [0, 0]]\n")
	out, err := s.execute("solve", path)
	require.NoError(s.T(), err)
	require.Contains(s.T(), out, "max flow: 7")
}

func (s *CommandSuite) TestSolveRejectsNegativeCapacity() {
	path := s.write("bad.toml", "capacity = [[0, -1], [0, 0]]\n")
	_, err := s.execute("solve", path)
	require.ErrorIs(s.T(), err, network.ErrInvalidGraph)
}

func (s *CommandSuite) TestSolveRejectsBadEndpoints() {
	path := s.write("bad.toml", "source = 1\nsink = 1\ncapacity = [[0, 1], [0, 0]]\n")
	_, err := s.execute("solve", path)
	require.ErrorIs(s.T(), err, network.ErrInvalidVertex)
}

func (s *CommandSuite) TestSolveMissingCapacity() {
	path := s.write("empty.toml", "source = 0\n")
	_, err := s.execute("solve", path)
	require.Error(s.T(), err)
}

func (s *CommandSuite) TestDemo() {
	out, err := s.execute("demo", "--seed", "7", "--vertices", "5", "--density", "0.5")
	require.NoError(s.T(), err)
	require.Contains(s.T(), out, "Network (5 vertices, seed 7)")
	require.Contains(s.T(), out, "max flow:")
}

func (s *CommandSuite) TestDemoRejectsBadDensity() {
	_, err := s.execute("demo", "--seed", "1", "--density", "2")
	require.Error(s.T(), err)
}

func (s *CommandSuite) TestSweepFromConfig() {
	path := s.write("sweeps.toml", `
[[sweep]]
name = "tiny"
from = 4
to = 8
step = 4
density = 0.5
`)
	out, err := s.execute("sweep", "--config", path)
	require.NoError(s.T(), err)
	require.Contains(s.T(), out, "Sweep tiny (density 0.5)")
	require.Contains(s.T(), out, "Vertices")
}

func (s *CommandSuite) TestSweepUnknownPreset() {
	_, err := s.execute("sweep", "--density", "extreme")
	require.Error(s.T(), err)
}

func (s *CommandSuite) TestRenderDOT() {
	path := s.write("diamond.toml", diamondTOML)
	target := filepath.Join(s.dir, "out.dot")
	out, err := s.execute("render", path, "-o", target)
	require.NoError(s.T(), err)
	require.Contains(s.T(), out, "max flow 4")

	data, err := os.ReadFile(target)
	require.NoError(s.T(), err)
	require.Contains(s.T(), string(data), `0 -> 2 [label="2/2", penwidth=2.5, style=dashed, color=red];`)
}

func (s *CommandSuite) TestRenderUnsupportedFormat() {
	path := s.write("diamond.toml", diamondTOML)
	_, err := s.execute("render", path, "-o", filepath.Join(s.dir, "out.png"))
	require.Error(s.T(), err)
}

func TestCommandSuite(t *testing.T) {
	suite.Run(t, new(CommandSuite))
}
