package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	userID    string
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envServer := os.Getenv("ARETO_SERVER")
	if envServer == "" {
		envServer = "http://localhost:5000/api"
	}

	cmd := &cobra.Command{
		Use:   "areto-cli",
		Short: "Terminal client for the Areto quiz service",
	}

	cmd.PersistentFlags().StringVar(&serverURL, "server", envServer, "base URL of the quiz API")
	cmd.PersistentFlags().StringVar(&userID, "user", "", "caller identity for ownership checks")
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newPlayCmd())
	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newEditCmd())
	cmd.AddCommand(newDeleteCmd())
	return cmd
}
