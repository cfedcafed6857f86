package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/studium/internal/app"
	"github.com/abhisek/studium/internal/history"
	"github.com/abhisek/studium/internal/llm"
	"github.com/abhisek/studium/internal/mathtex"
	sess "github.com/abhisek/studium/internal/session"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg := llm.ConfigFromEnv()
	requestLog := llm.NewRequestLog(llm.DefaultRequestLogCapacity)

	opts := app.Options{
		Session:      sess.New(history.New(history.DefaultCapacity)),
		MathRenderer: mathtex.New(),
		QueryTimeout: cfg.Timeout,
	}

	provider, err := llm.NewProviderFromEnv(ctx, requestLog)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Study sessions will be unavailable.")
	} else {
		opts.Provider = provider
	}

	return app.Run(opts)
}
