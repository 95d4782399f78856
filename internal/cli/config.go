package cli

import (
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command.
func NewConfigCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, the config file and flag
overrides have been merged and validated.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(opts, cmd)
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if formatter.IsJSON() {
				return formatter.Success(cfg)
			}
			out, err := cfg.Marshal()
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to render config", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
