package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/areto-app/areto/internal/client"
	"github.com/areto-app/areto/internal/session"
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <quiz-id>",
		Short: "Take a quiz in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid quiz id %q", args[0])
			}
			api := client.New(serverURL, nil)
			return runPlay(cmd.Context(), api, uint(id), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runPlay(ctx context.Context, api *client.Client, quizID uint, in io.Reader, out io.Writer) error {
	quiz, err := api.GetQuiz(ctx, quizID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s %s\n", quiz.Icon, quiz.Title)
	if quiz.TimeLimit != nil {
		fmt.Fprintf(out, "%ds per question\n", *quiz.TimeLimit)
	}

	s := session.New(quiz)
	runner := session.NewRunner(s)
	runner.Start()
	defer runner.Stop()

	reader := bufio.NewReader(in)

	for {
		switch s.State() {
		case session.StateAnswering:
			question := s.Question()
			printQuestion(out, s)

			option, ok := readOption(reader, out, question.Options)
			if !ok {
				// Input closed; give up on the session.
				return nil
			}
			if s.State() != session.StateAnswering {
				// The countdown expired while the player was typing.
				continue
			}
			if option != "" {
				s.Select(option)
			}
			if err := s.Submit(); err != nil {
				fmt.Fprintf(out, "%s\n", err)
			}

		case session.StateFeedback:
			printFeedback(out, s)
			fmt.Fprint(out, "Press Enter to continue...")
			if _, err := reader.ReadString('\n'); err != nil {
				return nil
			}
			s.Next()

		case session.StateFinished:
			return printResults(ctx, api, out, quizID, s)
		}
	}
}

func printQuestion(out io.Writer, s *session.Session) {
	question := s.Question()
	fmt.Fprintf(out, "\nQuestion %d of %d", s.QuestionIndex()+1, s.QuestionCount())
	if remaining, ok := s.TimeLeft(); ok {
		fmt.Fprintf(out, " (%ds left)", remaining)
	}
	fmt.Fprintf(out, "\n%s\n\n", question.Question)
	for i, option := range question.Options {
		fmt.Fprintf(out, "%c. %s\n", 'A'+i, option)
	}
	fmt.Fprint(out, "\nYour answer: ")
}

func readOption(reader *bufio.Reader, out io.Writer, options []string) (string, bool) {
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", false
	}
	line = strings.ToUpper(strings.TrimSpace(line))
	if len(line) == 1 {
		letter := line[0]
		if letter >= 'A' && letter < byte('A'+len(options)) {
			return options[letter-'A'], true
		}
	}
	fmt.Fprintln(out, "Enter a letter between A and D.")
	return "", true
}

func printFeedback(out io.Writer, s *session.Session) {
	answers := s.Answers()
	last := answers[len(answers)-1]
	question := s.Question()

	if s.Expired() {
		fmt.Fprintf(out, "\nTime's up! The correct answer was %s\n", question.Answer)
	} else if last.IsCorrect {
		fmt.Fprintln(out, "\nCorrect!")
	} else {
		fmt.Fprintf(out, "\nIncorrect. The correct answer was %s\n", question.Answer)
	}
}

func printResults(ctx context.Context, api *client.Client, out io.Writer, quizID uint, s *session.Session) error {
	answers := s.Answers()
	summary := session.Summarize(answers)

	fmt.Fprintf(out, "\nFinal score: %d/%d (%d%%)\n", summary.Correct, summary.Total, summary.Percentage)
	fmt.Fprintln(out, summary.Performance)
	if summary.Celebrate {
		fmt.Fprintln(out, "🎉🎉🎉")
	}
	fmt.Fprintf(out, "Time spent: %ds\n", s.Elapsed())

	reporter := session.NewReporter(api)
	stats, err := reporter.Report(ctx, quizID, answers, s.Elapsed())
	if err != nil {
		fmt.Fprintf(out, "Could not submit results: %s\n", err)
		return nil
	}
	fmt.Fprintf(out, "This quiz has now been played %d times with an average success rate of %d%%.\n",
		stats.TotalPlays, stats.AverageSuccessRate)
	return nil
}
