package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/areto-app/areto/internal/client"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var sortBy string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available quizzes",
		RunE: func(cmd *cobra.Command, args []string) error {
			api := client.New(serverURL, nil)
			return runList(cmd.Context(), api, cmd.OutOrStdout(), sortBy)
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort", "", "leaderboard order: plays or success")
	return cmd
}

func runList(ctx context.Context, api *client.Client, out io.Writer, sortBy string) error {
	quizzes, err := api.ListQuizzes(ctx)
	if err != nil {
		return err
	}

	switch sortBy {
	case "":
	case "plays":
		sort.SliceStable(quizzes, func(i, j int) bool {
			return quizzes[i].TotalPlays > quizzes[j].TotalPlays
		})
	case "success":
		sort.SliceStable(quizzes, func(i, j int) bool {
			return quizzes[i].AverageSuccessRate > quizzes[j].AverageSuccessRate
		})
	default:
		return fmt.Errorf("unknown sort %q: use plays or success", sortBy)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tQUIZ\tQUESTIONS\tPLAYS\tAVG SUCCESS")
	for _, quiz := range quizzes {
		fmt.Fprintf(w, "%d\t%s %s\t%d\t%d\t%d%%\n",
			quiz.ID, quiz.Icon, quiz.Title, len(quiz.QuizQuestions), quiz.TotalPlays, quiz.AverageSuccessRate)
	}
	return w.Flush()
}
