// Package cli provides the command-line interface for ziri-launcher.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ziri-ai/ziri-launcher/internal/app"
	"github.com/ziri-ai/ziri-launcher/internal/domain"
	"github.com/ziri-ai/ziri-launcher/internal/usecase"
)

// NewRootCommand creates the root command for ziri-launcher.
// It receives the container for dependency injection and version for display.
//
// Flag parsing is disabled: the argument vector belongs to the delegate and
// must reach it verbatim, so the launcher defines no flags of its own and
// forwards everything, including --help and --version.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "ziri-launcher [args...]",
		Short: "Bootstrap shim that delegates to the ziri CLI",
		Long: `ziri-launcher locates a runnable ziri and hands over to it.

It looks for a ziri executable on the search path first, then falls back
to running the ziri package through npx. The full argument vector is
forwarded unchanged and the delegate's exit status is relayed exactly.`,
		Version:            version,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}

			uc := c.LaunchUseCase(cmd.OutOrStdout())
			out, err := uc.Execute(cmd.Context(), usecase.LaunchInput{Args: args})
			if err != nil {
				return err
			}
			if out.ExitCode != 0 {
				return domain.NewExitError(out.ExitCode)
			}
			return nil
		},
	}

	return root
}
