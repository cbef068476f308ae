package state

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trielab/statetrie/pkg/trie"
	"github.com/urfave/cli"
)

func init() {
	// Keep ExitCoder errors from terminating the test binary.
	cli.OsExiter = func(int) {}
	cli.ErrWriter = io.Discard
}

const testStateYAML = `
LogLevel: error
Entries:
  - Key: a71355
    Value: 45.0ETH
  - Key: a77d337
    Value: 1.00WEI
  - Key: a7f9365
    Value: 1.1ETH
  - Key: a77d397
    Value: 0.12ETH
`

func newTestApp(w *bytes.Buffer) *cli.App {
	ctl := cli.NewApp()
	ctl.Name = "statetrie"
	ctl.Writer = w
	ctl.Commands = NewCommands()
	return ctl
}

func writeTestState(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "state.yml")
	require.NoError(t, os.WriteFile(path, []byte(testStateYAML), 0644))
	return path
}

func TestRootCommand(t *testing.T) {
	path := writeTestState(t)

	expected := trie.NewTrie(trie.Config{})
	expected.Put("a71355", "45.0ETH")
	expected.Put("a77d337", "1.00WEI")
	expected.Put("a7f9365", "1.1ETH")
	expected.Put("a77d397", "0.12ETH")

	var out bytes.Buffer
	ctl := newTestApp(&out)
	require.NoError(t, ctl.Run([]string{"statetrie", "root", "-c", path}))
	require.Equal(t, expected.RootHash().StringBE(), strings.TrimSpace(out.String()))
}

func TestRootCommand_NoConfig(t *testing.T) {
	var out bytes.Buffer
	ctl := newTestApp(&out)
	require.Error(t, ctl.Run([]string{"statetrie", "root"}))
}

func TestGetCommand(t *testing.T) {
	path := writeTestState(t)

	t.Run("Present", func(t *testing.T) {
		var out bytes.Buffer
		ctl := newTestApp(&out)
		require.NoError(t, ctl.Run([]string{"statetrie", "get", "-c", path, "-k", "a77d337"}))
		require.Equal(t, "1.00WEI", strings.TrimSpace(out.String()))
	})
	t.Run("Absent", func(t *testing.T) {
		var out bytes.Buffer
		ctl := newTestApp(&out)
		require.Error(t, ctl.Run([]string{"statetrie", "get", "-c", path, "-k", "xyz"}))
	})
	t.Run("NoKey", func(t *testing.T) {
		var out bytes.Buffer
		ctl := newTestApp(&out)
		require.Error(t, ctl.Run([]string{"statetrie", "get", "-c", path}))
	})
}

func TestDumpCommand(t *testing.T) {
	path := writeTestState(t)
	outFile := filepath.Join(t.TempDir(), "dump.json")

	var out bytes.Buffer
	ctl := newTestApp(&out)
	require.NoError(t, ctl.Run([]string{"statetrie", "dump", "-c", path, "-o", outFile}))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Contains(t, string(data), `"kind": "extension"`)
	require.Contains(t, string(data), `"path": "a7"`)
	require.Contains(t, string(data), `"value": "1.1ETH"`)
}
