package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/abdidvp/matchscore/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/require"
)

const fixturePath = "../../../../testdata/fixtures/marketplace.yaml"

// workspace is a throwaway database and config directory.
type workspace struct {
	db        string
	configDir string
}

func newWorkspace(t *testing.T) workspace {
	t.Helper()
	dir := t.TempDir()
	return workspace{
		db:        filepath.Join(dir, "data", "matchscore.db"),
		configDir: dir,
	}
}

// seeded returns a workspace with the marketplace fixture imported.
func seeded(t *testing.T) workspace {
	t.Helper()
	ws := newWorkspace(t)
	_, err := ws.run("import", fixturePath)
	require.NoError(t, err)
	return ws
}

func (ws workspace) writeConfig(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(ws.configDir, ".matchscore.yaml"), []byte(content), 0o644))
}

func (ws workspace) run(args ...string) (string, error) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(append(args, "--db", ws.db, "--config-dir", ws.configDir))
	err := cmd.Execute()
	return buf.String(), err
}
