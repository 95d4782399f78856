package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/orbitr/internal/catalog"
	"github.com/roach88/orbitr/internal/rso"
	"github.com/roach88/orbitr/internal/store"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fill an empty record file from the built-in catalog",
		Long: `Write the built-in catalog into the record file.

Seeding only happens when the file holds no records; a populated file is
left untouched.

Example:
  orbitr seed --data ./instance/rso_store.json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(opts, cmd)
			_, logger, st, err := setup(opts, cmd)
			if err != nil {
				return err
			}
			seeded, err := st.Seed(catalog.Load())
			if err != nil {
				return storeFailure(formatter, err)
			}
			n, err := st.Len()
			if err != nil {
				return storeFailure(formatter, err)
			}
			logger.Debug("seed finished", "seeded", seeded, "records", n)

			if formatter.IsJSON() {
				return formatter.Success(map[string]any{
					"seeded":  seeded,
					"records": n,
					"path":    st.Path(),
				})
			}
			if seeded {
				fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d records into %s\n", n, st.Path())
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already holds %d records; nothing seeded\n", st.Path(), n)
			}
			return nil
		},
	}
}

// NewListCommand creates the list command.
func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List stored records sorted by display name",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(opts, cmd)
			_, _, st, err := setup(opts, cmd)
			if err != nil {
				return err
			}
			records, err := st.List()
			if err != nil {
				return storeFailure(formatter, err)
			}
			if formatter.IsJSON() {
				return formatter.Success(records)
			}
			return writeTable(cmd.OutOrStdout(), records)
		},
	}
}

// NewGetCommand creates the get command.
func NewGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "get <satcat>",
		Short:         "Show one record",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(opts, cmd)
			_, _, st, err := setup(opts, cmd)
			if err != nil {
				return err
			}
			satcat := strings.TrimSpace(args[0])
			r, ok, err := st.Get(satcat)
			if err != nil {
				return storeFailure(formatter, err)
			}
			if !ok {
				return formatter.Fail(ExitFailure, ErrCodeNotFound, store.NotFoundMessage(satcat), nil)
			}
			if formatter.IsJSON() {
				return formatter.Success(r)
			}
			writeRecord(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <satcat>",
		Short:         "Remove one record",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(opts, cmd)
			_, logger, st, err := setup(opts, cmd)
			if err != nil {
				return err
			}
			satcat := strings.TrimSpace(args[0])
			if err := st.Delete(satcat); err != nil {
				return storeFailure(formatter, err)
			}
			logger.Info("record deleted", "satcat", satcat)
			if formatter.IsJSON() {
				return formatter.Success(map[string]string{"deleted": satcat})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", satcat)
			return nil
		},
	}
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "catalog",
		Short:         "Print the built-in almanac catalog",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(opts, cmd)
			records := catalog.Load()
			if formatter.IsJSON() {
				return formatter.Success(records)
			}
			return writeTable(cmd.OutOrStdout(), records)
		},
	}
}

// storeFailure reports a store error and maps it to an exit code.
func storeFailure(f *OutputFormatter, err error) error {
	if store.IsNotFound(err) {
		return f.Fail(ExitFailure, ErrCodeNotFound, store.Message(err), nil)
	}
	_ = f.Error(ErrCodeStore, store.Message(err), nil)
	return WrapExitError(ExitCommandError, ErrCodeStore, err)
}

func writeTable(w io.Writer, records []rso.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SATCAT\tNAME\tDESIGNATOR\tTAGS")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			r.SatcatNumber, r.DisplayName, r.InternationalDesignator, strings.Join(r.Tags, ","))
	}
	return tw.Flush()
}

func writeRecord(w io.Writer, r rso.Record) {
	fmt.Fprintf(w, "SatCat:       %s\n", r.SatcatNumber)
	fmt.Fprintf(w, "Name:         %s\n", r.DisplayName)
	fmt.Fprintf(w, "Designator:   %s\n", r.InternationalDesignator)
	fmt.Fprintf(w, "Aliases:      %s\n", strings.Join(r.Aliases, ", "))
	fmt.Fprintf(w, "Tags:         %s\n", strings.Join(r.Tags, ", "))
	fmt.Fprintln(w, "TLE:")
	for _, line := range strings.Split(r.TLE, "\n") {
		fmt.Fprintf(w, "  %s\n", line)
	}
}
