package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/orbitr/internal/payload"
	"github.com/roach88/orbitr/internal/rso"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	Partial bool
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <file|->",
		Short: "Check a record payload without storing it",
		Long: `Validate a JSON record payload against the record rules.

The payload is read from the named file, or from stdin when the argument
is "-". On success the cleaned values are printed; on failure every
offending field is listed.

Example:
  orbitr validate ./iss.json
  cat patch.json | orbitr validate --partial -`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Partial, "partial", false, "validate as a partial update (absent fields allowed)")

	return cmd
}

func runValidate(opts *ValidateOptions, source string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	data, err := readSource(source, cmd.InOrStdin())
	if err != nil {
		_ = formatter.Error(ErrCodeInput, fmt.Sprintf("cannot read %s", source), err.Error())
		return WrapExitError(ExitCommandError, ErrCodeInput, err)
	}
	formatter.VerboseLog("read %d bytes from %s", len(data), source)

	obj, err := payload.DecodeObject(data)
	if err != nil {
		msg := "A JSON document is required."
		if errors.Is(err, payload.ErrNotObject) {
			msg = "JSON payload must be an object."
		}
		_ = formatter.Error(ErrCodeInput, msg, err.Error())
		return WrapExitError(ExitCommandError, ErrCodeInput, err)
	}

	formatter.VerboseLog("payload fields: %s", strings.Join(obj.SortedKeys(), ", "))

	fields, errs := rso.Validate(obj, opts.Partial)
	if errs != nil {
		if formatter.IsJSON() {
			_ = formatter.Error(ErrCodeValidation, "Validation failed.", map[string]string(errs))
		} else {
			writeFieldErrors(cmd.OutOrStdout(), errs)
		}
		return WrapExitError(ExitFailure, ErrCodeValidation, errs)
	}

	mode := "full"
	if opts.Partial {
		mode = "partial"
	}
	if formatter.IsJSON() {
		return formatter.Success(map[string]any{
			"valid":  true,
			"mode":   mode,
			"fields": fields.Map(),
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Payload is valid (%s).\n", mode)
	return writeIndented(cmd.OutOrStdout(), fields.Map())
}

func readSource(source string, stdin io.Reader) ([]byte, error) {
	if source == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(source)
}

func writeFieldErrors(w io.Writer, errs rso.FieldErrors) {
	fmt.Fprintln(w, "Validation failed:")
	for _, name := range rso.FieldNames {
		if msg, ok := errs[name]; ok {
			fmt.Fprintf(w, "  %s: %s\n", name, msg)
		}
	}
}

func writeIndented(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
