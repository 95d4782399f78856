package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/orbitr/internal/rso"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func payloadPath(name string) string {
	return filepath.Join("testdata", "payloads", name)
}

func TestValidate_FullValid(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "validate", payloadPath("full_valid.json"))
	require.NoError(t, err)
	newGoldie(t).Assert(t, "validate_full_valid", []byte(out))
}

func TestValidate_FullInvalid(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "validate", payloadPath("full_invalid.json"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	newGoldie(t).Assert(t, "validate_full_invalid", []byte(out))
}

func TestValidate_InvalidJSONOutput(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "--format", "json", "validate", payloadPath("full_invalid.json"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string `json:"status"`
		Error  struct {
			Code    string            `json:"code"`
			Message string            `json:"message"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "Validation failed.", resp.Error.Message)
	assert.Len(t, resp.Error.Details, 6)
	assert.Equal(t, rso.MsgRequired, resp.Error.Details[rso.FieldTLE])
}

func TestValidate_PartialFromStdin(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runWithInput(t, []byte(`{"tags": ["  "]}`), "validate", "--partial", "-")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "validate_partial_stdin", []byte(out))
}

func TestValidate_PartialStillChecksPresentFields(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runWithInput(t, []byte(`{"tle": 1.5}`), "validate", "--partial", "-")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "Validation failed:\n  tle: Value must be a string.\n", out)
}

func TestValidate_InputErrors(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		wantMsg string
	}{
		{"not_json", `{"display_name":`, "A JSON document is required."},
		{"trailing_data", `{} {}`, "A JSON document is required."},
		{"not_object", `["ISS"]`, "JSON payload must be an object."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			out, err := env.runWithInput(t, []byte(tt.stdin), "validate", "-")
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Equal(t, "Error [E004]: "+tt.wantMsg+"\n", out)
		})
	}
}

func TestValidate_MissingFile(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "validate", filepath.Join(env.dir, "nope.json"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E004]: cannot read")
}

func TestValidate_VerboseListsPayloadFields(t *testing.T) {
	env := newTestEnv(t)
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(bytes.NewReader([]byte(`{"tle":"x","extra":1,"aliases":[]}`)))
	cmd.SetArgs([]string{"--config", env.configPath, "--verbose", "validate", "--partial", "-"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "payload fields: aliases, extra, tle\n")
	assert.NotContains(t, out.String(), "payload fields")
}
