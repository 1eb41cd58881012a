package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/areto-app/areto/internal/client"
	"github.com/areto-app/areto/internal/dto"
	"github.com/spf13/cobra"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Build a new quiz interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			api := client.New(serverURL, nil)
			return runCreate(cmd.Context(), api, userID, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runCreate(ctx context.Context, api *client.Client, user string, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	title, ok := promptLine(reader, out, "Title: ")
	if !ok {
		return errInputClosed
	}
	if title == "" {
		return errors.New("a quiz needs a title")
	}

	icon, ok := promptLine(reader, out, "Icon (blank for default): ")
	if !ok {
		return errInputClosed
	}

	timeLimit, ok := promptTimeLimit(reader, out, "Seconds per question (blank for untimed): ")
	if !ok {
		return errInputClosed
	}

	questions, ok := promptQuestions(reader, out)
	if !ok {
		return errInputClosed
	}

	quiz, err := api.CreateQuiz(ctx, dto.QuizCreateDTO{
		Title:         title,
		Icon:          icon,
		QuizQuestions: questions,
		CreatedBy:     user,
		TimeLimit:     timeLimit,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nCreated quiz %d: %s %s\n", quiz.ID, quiz.Icon, quiz.Title)
	return nil
}
