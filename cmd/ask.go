package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studium/internal/llm"
	"github.com/abhisek/studium/internal/mathtex"
	"github.com/abhisek/studium/internal/quiz"
	"github.com/abhisek/studium/internal/segment"
	"github.com/abhisek/studium/internal/study"
)

var askCmd = &cobra.Command{
	Use:   "ask <topic>",
	Short: "Ask about a topic without the full TUI",
	Long: `One-shot query printed straight to stdout.

Useful for quick questions and for piping answers elsewhere. Practice
mode runs the quiz interactively on the terminal.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringP("mode", "m", "explain", "Study mode: explain, summarize, or practice")
	askCmd.Flags().StringP("subject", "s", "General", "Subject area")
	askCmd.Flags().Bool("stats", false, "Print token usage after the answer")
}

func runAsk(cmd *cobra.Command, args []string) error {
	topic := strings.Join(args, " ")
	modeVal, _ := cmd.Flags().GetString("mode")
	subjectVal, _ := cmd.Flags().GetString("subject")
	showStats, _ := cmd.Flags().GetBool("stats")

	mode, err := resolveMode(modeVal)
	if err != nil {
		return err
	}
	subject, err := resolveSubject(subjectVal)
	if err != nil {
		return err
	}

	req, err := study.BuildRequest(topic, mode, subject)
	if err != nil {
		return err
	}

	requestLog := llm.NewRequestLog(llm.DefaultRequestLogCapacity)
	provider, err := llm.NewProviderFromEnv(cmd.Context(), requestLog)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	cfg := llm.ConfigFromEnv()
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()
	ctx = llm.WithPurpose(ctx, string(mode))

	resp, err := provider.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	result, err := study.ParseResponse(resp.Content, mode, subject, topic)
	if err != nil {
		return fmt.Errorf("parse response: %w", err)
	}

	renderer := segment.NewRenderer(mathtex.New())

	if len(result.Questions) > 0 {
		runQuiz(renderer, result)
	} else {
		fmt.Println(renderer.RenderAll(result.Content))
	}

	if showStats {
		printStats(requestLog)
	}
	return nil
}

// runQuiz walks the questions interactively on stdin.
func runQuiz(renderer *segment.Renderer, result *study.Result) {
	progress := quiz.New(result.Questions)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("%s\n\n", result.Title)

	for i, q := range result.Questions {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(result.Questions))
		fmt.Println(renderer.RenderAll(q.Question))
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, renderer.RenderAll(opt))
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		choice, err := strconv.Atoi(answer)
		if err != nil || !progress.Select(i, choice-1) {
			fmt.Print("(invalid choice, skipped)\n\n")
			continue
		}

		if a, _ := progress.Answered(i); a.Correct {
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n",
				renderer.RenderAll(q.Options[q.CorrectAnswer]))
		}
		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", renderer.RenderAll(q.Explanation))
		}
		fmt.Println()
	}

	correct, answered := progress.Score()
	fmt.Printf("── Summary: %d/%d correct ──\n", correct, answered)
}

func printStats(log *llm.RequestLog) {
	for _, rec := range log.List() {
		fmt.Printf("\n[%s] in=%d out=%d latency=%dms model=%s\n",
			rec.Purpose, rec.InputTokens, rec.OutputTokens, rec.LatencyMs, rec.Model)
	}
}

func resolveMode(val string) (study.Mode, error) {
	for _, m := range study.Modes() {
		if strings.EqualFold(val, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid mode %q: must be explain, summarize, or practice", val)
}

func resolveSubject(val string) (study.Subject, error) {
	for _, s := range study.Subjects() {
		if strings.EqualFold(val, string(s)) {
			return s, nil
		}
	}
	var names []string
	for _, s := range study.Subjects() {
		names = append(names, string(s))
	}
	return "", fmt.Errorf("invalid subject %q: choose one of %s", val, strings.Join(names, ", "))
}
