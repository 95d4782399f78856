package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/orbitr/internal/catalog"
	"github.com/roach88/orbitr/internal/rso"
)

func TestSeedCommand(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 27 records")

	out, err = env.run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "already holds 27 records; nothing seeded")
}

func TestSeedCommand_JSON(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "--format", "json", "seed")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Seeded  bool   `json:"seeded"`
			Records int    `json:"records"`
			Path    string `json:"path"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Seeded)
	assert.Equal(t, catalog.Len(), resp.Data.Records)
	assert.Equal(t, env.dataPath, resp.Data.Path)
}

func TestListCommand_Empty(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "SATCAT  NAME  DESIGNATOR  TAGS\n", out)

	_, statErr := os.Stat(env.dataPath)
	assert.NoError(t, statErr, "opening the store creates the record file")
}

func TestListCommand_SortedByName(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run(t, "seed")
	require.NoError(t, err)

	out, err := env.run(t, "--format", "json", "list")
	require.NoError(t, err)

	var resp struct {
		Data []rso.Record `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, catalog.Len())
	for i := 1; i < len(resp.Data); i++ {
		prev := strings.ToLower(resp.Data[i-1].DisplayName)
		cur := strings.ToLower(resp.Data[i].DisplayName)
		assert.LessOrEqual(t, prev, cur)
	}
}

func TestGetCommand(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run(t, "seed")
	require.NoError(t, err)

	out, err := env.run(t, "get", "25544")
	require.NoError(t, err)
	assert.Contains(t, out, "Name:         International Space Station\n")
	assert.Contains(t, out, "Tags:         human-spaceflight, iss\n")
	assert.Contains(t, out, "  1 25544U")

	out, err = env.run(t, "--format", "json", "get", "25544")
	require.NoError(t, err)
	var resp struct {
		Data rso.Record `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "1998-067A", resp.Data.InternationalDesignator)
	assert.Equal(t, []string{"ISS", "Zarya"}, resp.Data.Aliases)
}

func TestGetCommand_NotFound(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "get", "99999")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "Error [E005]: RSO with SatCat 99999 was not found.\n", out)
}

func TestDeleteCommand(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run(t, "seed")
	require.NoError(t, err)

	out, err := env.run(t, "delete", "25544")
	require.NoError(t, err)
	assert.Equal(t, "Deleted 25544\n", out)

	_, err = env.run(t, "get", "25544")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	out, err = env.run(t, "--format", "json", "delete", "25544")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, `"code": "E005"`)
}

func TestCorruptStore_FailPolicy(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig(t, "storage:\n  on_corrupt: fail\n")
	require.NoError(t, os.MkdirAll(filepath.Dir(env.dataPath), 0o755))
	require.NoError(t, os.WriteFile(env.dataPath, []byte("{not json"), 0o644))

	out, err := env.run(t, "list")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E003]")
}

func TestBadConfig(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig(t, "storage:\n  on_corrupt: ignore\n")

	_, err := env.run(t, "list")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "E002")
}

func TestCatalogCommand(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "catalog")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, catalog.Len()+1)
	assert.True(t, strings.HasPrefix(lines[0], "SATCAT"))

	_, statErr := os.Stat(env.dataPath)
	assert.True(t, os.IsNotExist(statErr), "catalog does not touch the store")
}

func TestConfigCommand(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig(t, "server:\n  listen: 127.0.0.1:9000\n")

	out, err := env.run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "127.0.0.1:9000")
	assert.Contains(t, out, env.dataPath)
	assert.Contains(t, out, "on_corrupt: recover")
}
