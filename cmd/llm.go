package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studium/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM provider configuration",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the configured provider responds",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("configuration: %w", err)
		}

		requestLog := llm.NewRequestLog(llm.DefaultRequestLogCapacity)
		provider, err := llm.NewProvider(cmd.Context(), cfg, requestLog)
		if err != nil {
			return fmt.Errorf("create provider: %w", err)
		}

		fmt.Printf("Provider: %s\n", cfg.Provider)
		fmt.Printf("Model:    %s\n", provider.ModelID())

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		defer cancel()
		ctx = llm.WithPurpose(ctx, "check")

		_, err = provider.Generate(ctx, llm.Request{
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: "Reply with the single word: ok"}},
			MaxTokens: 8,
		})
		if err != nil {
			return fmt.Errorf("probe request failed: %w", err)
		}

		records := requestLog.List()
		if len(records) > 0 {
			rec := records[0]
			fmt.Printf("Latency:  %dms\n", rec.LatencyMs)
			fmt.Printf("Tokens:   %d in / %d out\n", rec.InputTokens, rec.OutputTokens)
		}
		fmt.Println("OK")
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmCheckCmd)
}
