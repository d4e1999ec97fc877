package cmd

import (
	"context"
	"log/slog"

	"github.com/Snider/finanza-launcher/pkg/launcher"
	"github.com/Snider/finanza-launcher/pkg/logger"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command; running it starts the launcher.
var RootCmd = NewRootCmd()

// NewRootCmd creates the launcher command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finanza",
		Short: "Start the Finanza dev server and open it in the browser.",
		Long: `Starts the Finanza development server (npm run dev) from the directory
that holds this launcher, waits for it to come up, opens http://localhost:8080
in the default browser and keeps running until interrupted.

Keep the window open while using the app; closing it stops the server.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logger.WithContext(ctx, logger.NewWithWriter(cmd.ErrOrStderr(), verbose)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			waitReady, _ := cmd.Flags().GetBool("wait-ready")
			readyTimeout, _ := cmd.Flags().GetDuration("ready-timeout")
			noBrowser, _ := cmd.Flags().GetBool("no-browser")

			log := logger.FromContext(cmd.Context())
			l := launcher.New(cmd.OutOrStdout(), cmd.InOrStdin(), log, launcher.Options{
				WaitReady:    waitReady,
				ReadyTimeout: readyTimeout,
				NoBrowser:    noBrowser,
			})
			return l.Run(cmd.Context())
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.Flags().Bool("wait-ready", false, "After the fixed delay, also wait until the dev server accepts connections")
	cmd.Flags().Duration("ready-timeout", launcher.DefaultReadyTimeout, "How long --wait-ready waits before opening the browser anyway")
	cmd.Flags().Bool("no-browser", false, "Do not open the browser")

	return cmd
}

// Execute runs the root command. ctx is cancelled on interrupt; log is used
// until the verbose flag has been parsed.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context, log *slog.Logger) error {
	return RootCmd.ExecuteContext(logger.WithContext(ctx, log))
}
