package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/areto-app/areto/internal/client"
	"github.com/areto-app/areto/internal/dto"
	"github.com/spf13/cobra"
)

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <quiz-id>",
		Short: "Edit a quiz you created",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid quiz id %q", args[0])
			}
			api := client.New(serverURL, nil)
			return runEdit(cmd.Context(), api, uint(id), userID, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runEdit walks the edit form. Fields left blank keep their stored values;
// the service ignores anything the request leaves out.
func runEdit(ctx context.Context, api *client.Client, quizID uint, user string, in io.Reader, out io.Writer) error {
	quiz, err := api.GetQuiz(ctx, quizID)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(in)
	fmt.Fprintf(out, "Editing %s %s\n", quiz.Icon, quiz.Title)

	req := dto.QuizUpdateDTO{UserID: user}

	title, ok := promptLine(reader, out, fmt.Sprintf("Title [%s]: ", quiz.Title))
	if !ok {
		return errInputClosed
	}
	req.Title = title

	icon, ok := promptLine(reader, out, fmt.Sprintf("Icon [%s]: ", quiz.Icon))
	if !ok {
		return errInputClosed
	}
	if icon != "" {
		req.Icon = &icon
	}

	current := "untimed"
	if quiz.TimeLimit != nil {
		current = fmt.Sprintf("%ds", *quiz.TimeLimit)
	}
	timeLimit, ok := promptTimeLimit(reader, out, fmt.Sprintf("Seconds per question [%s]: ", current))
	if !ok {
		return errInputClosed
	}
	req.TimeLimit = timeLimit

	replace, ok := promptLine(reader, out, "Replace the questions? (y/N): ")
	if !ok {
		return errInputClosed
	}
	if strings.EqualFold(replace, "y") {
		questions, ok := promptQuestions(reader, out)
		if !ok {
			return errInputClosed
		}
		req.QuizQuestions = questions
	}

	updated, err := api.UpdateQuiz(ctx, quizID, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nUpdated quiz %d: %s %s\n", updated.ID, updated.Icon, updated.Title)
	return nil
}
