package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/areto-app/areto/internal/dto"
	"github.com/areto-app/areto/internal/model"
)

var errInputClosed = errors.New("input ended before the quiz was finished")

// promptLine prints a label and reads one trimmed line. ok is false when the
// input is exhausted.
func promptLine(reader *bufio.Reader, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// promptTimeLimit reads a per-question limit in seconds. Blank means untimed.
func promptTimeLimit(reader *bufio.Reader, out io.Writer, label string) (*int, bool) {
	for {
		line, ok := promptLine(reader, out, label)
		if !ok {
			return nil, false
		}
		if line == "" {
			return nil, true
		}
		seconds, err := strconv.Atoi(line)
		if err != nil || seconds < model.MinTimeLimit || seconds > model.MaxTimeLimit {
			fmt.Fprintf(out, "Enter a number between %d and %d, or leave blank.\n",
				model.MinTimeLimit, model.MaxTimeLimit)
			continue
		}
		return &seconds, true
	}
}

// promptQuestions walks the builder form: the question text, its four
// options, and the letter of the correct one. A blank question finishes the
// list once at least one question exists.
func promptQuestions(reader *bufio.Reader, out io.Writer) ([]dto.QuestionDTO, bool) {
	var questions []dto.QuestionDTO
	for {
		text, ok := promptLine(reader, out, fmt.Sprintf("\nQuestion %d (blank to finish): ", len(questions)+1))
		if !ok {
			return nil, false
		}
		if text == "" {
			if len(questions) == 0 {
				fmt.Fprintln(out, "A quiz needs at least one question.")
				continue
			}
			return questions, true
		}

		options := make([]string, 0, model.OptionCount)
		for i := 0; i < model.OptionCount; i++ {
			option, ok := promptLine(reader, out, fmt.Sprintf("Option %c: ", 'A'+i))
			if !ok {
				return nil, false
			}
			options = append(options, option)
		}

		answer := ""
		for answer == "" {
			letter, ok := promptLine(reader, out, "Correct option (A-D): ")
			if !ok {
				return nil, false
			}
			letter = strings.ToUpper(letter)
			if len(letter) == 1 && letter[0] >= 'A' && letter[0] < byte('A'+model.OptionCount) {
				answer = options[letter[0]-'A']
			} else {
				fmt.Fprintln(out, "Enter a letter between A and D.")
			}
		}

		questions = append(questions, dto.QuestionDTO{Question: text, Options: options, Answer: answer})
	}
}
