package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/acadex-io/acadex/internal/config"
	logpkg "github.com/acadex-io/acadex/internal/logger"
	"github.com/acadex-io/acadex/internal/metrics"
	"github.com/acadex-io/acadex/internal/repository/corpus"
	openaiTransport "github.com/acadex-io/acadex/internal/transport/openai"
	extractuc "github.com/acadex-io/acadex/internal/usecase/extract"
	intentuc "github.com/acadex-io/acadex/internal/usecase/intent"
	"github.com/acadex-io/acadex/internal/usecase/pipeline"
	"github.com/acadex-io/acadex/internal/usecase/respond"
	"github.com/acadex-io/acadex/internal/usecase/retrieval"
	verifyuc "github.com/acadex-io/acadex/internal/usecase/verify"
)

var askTopK int

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a single question from the command line",
	Long: `Ask runs one question through the full advisory pipeline and
prints the answer. With --verbose it also prints the classified
intent, the retrieved documents, and the verification report.

Example:
  acadex ask "What GPA do I need for the engineering program?"
  acadex ask -v "How do I prepare for the SAT?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().IntVar(&askTopK, "top-k", 0, "documents to retrieve per query (default from config)")
}

func runAsk(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	// A config file is optional for one-shot questions; without one the
	// built-in corpus and defaults are used.
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.LoadFile(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	level := "error"
	if verbose {
		level = "debug"
	}
	logger, err := logpkg.New(config.GetEnv(), level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	metrics.RegisterPipelineMetrics()

	repo, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	var polisher respond.Polisher
	if cfg.Polish.Enabled {
		p, err := openaiTransport.NewPolisher(&openaiTransport.Config{
			APIKey:     cfg.Polish.APIKey,
			BaseURL:    cfg.Polish.BaseURL,
			Model:      cfg.Polish.Model,
			MaxTokens:  cfg.Polish.MaxTokens,
			TimeoutSec: cfg.Polish.TimeoutSec,
			Logger:     logger,
		})
		if err != nil {
			return fmt.Errorf("create polisher: %w", err)
		}
		polisher = p
	}

	pipe := pipeline.New(
		intentuc.New(),
		retrieval.New(repo),
		extractuc.New(),
		verifyuc.New(),
		respond.New(polisher),
	).WithTopK(cfg.Retrieval.TopK)
	if askTopK > 0 {
		pipe = pipe.WithTopK(askTopK)
	}

	ctx := logpkg.ContextWithLogger(context.Background(), logger)
	answer, err := pipe.Process(ctx, query)
	if err != nil {
		return fmt.Errorf("process query: %w", err)
	}

	if verbose {
		fmt.Printf("Intent: %s (confidence %.2f)\n\n", answer.Intent, answer.Confidence)
		fmt.Println("Retrieved documents:")
		for _, d := range answer.Documents {
			fmt.Printf("  %d. [%.3f] %s\n", d.Rank(), d.Score(), d.Content())
		}
		fmt.Printf("\n%s\n\n", verifyuc.FormatReport(answer.Verification))
	}

	fmt.Println(answer.Response)

	if len(answer.Followups) > 0 {
		fmt.Println("\nYou might also ask:")
		for _, f := range answer.Followups {
			fmt.Printf("  - %s\n", f)
		}
	}

	return nil
}
