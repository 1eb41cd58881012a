package cli

import (
	"fmt"
	"strconv"

	"github.com/areto-app/areto/internal/client"
	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <quiz-id>",
		Short: "Delete a quiz you created",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid quiz id %q", args[0])
			}
			api := client.New(serverURL, nil)
			if err := api.DeleteQuiz(cmd.Context(), uint(id), userID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Quiz deleted successfully")
			return nil
		},
	}
}
