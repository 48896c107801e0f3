package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/munim/organize-bitwarden-folders-ai/internal/common"
	"github.com/munim/organize-bitwarden-folders-ai/internal/config"
	"github.com/munim/organize-bitwarden-folders-ai/internal/engine"
	"github.com/munim/organize-bitwarden-folders-ai/internal/llm"
	"github.com/munim/organize-bitwarden-folders-ai/internal/mapping"
	"github.com/munim/organize-bitwarden-folders-ai/internal/netcheck"
	"github.com/munim/organize-bitwarden-folders-ai/internal/vault"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Categorize a vault export",
		Long: `Categorize every item of a Bitwarden export and write the result table.

Examples:
  organize classify -i export.json -o categorized.csv
  organize classify -i export.json -o out.csv --provider requesty -b 20
  organize classify -i export.json -o out.csv --domain-folder-map companies.yaml`,
		RunE: runClassify,
	}

	cmd.Flags().StringP("input", "i", "", "Input Bitwarden export JSON file (required)")
	cmd.Flags().StringP("output", "o", "", "Output CSV file for categorized data (required)")
	cmd.Flags().StringP("model", "m", "claude-3-haiku-20240307", "LLM model to use")
	cmd.Flags().IntP("batch-size", "b", 10, "Number of items per LLM request")
	cmd.Flags().String("provider", "openrouter", "LLM provider (openrouter or requesty)")
	cmd.Flags().String("domain-folder-map", "", "Optional YAML file mapping domains to folders")
	cmd.Flags().Duration("probe-timeout", netcheck.DefaultProbeTimeout, "Timeout per reachability probe")
	cmd.Flags().Int("probe-workers", 4, "Concurrent reachability probes per batch")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	_ = viper.BindPFlag("classify.input", cmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("classify.output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("classify.model", cmd.Flags().Lookup("model"))
	_ = viper.BindPFlag("classify.batch_size", cmd.Flags().Lookup("batch-size"))
	_ = viper.BindPFlag("classify.provider", cmd.Flags().Lookup("provider"))
	_ = viper.BindPFlag("classify.domain_folder_map", cmd.Flags().Lookup("domain-folder-map"))
	_ = viper.BindPFlag("classify.probe_timeout", cmd.Flags().Lookup("probe-timeout"))
	_ = viper.BindPFlag("classify.probe_workers", cmd.Flags().Lookup("probe-workers"))

	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	input := config.ExpandPath(viper.GetString("classify.input"))
	output := config.ExpandPath(viper.GetString("classify.output"))
	provider := viper.GetString("classify.provider")
	mapPath := viper.GetString("classify.domain_folder_map")

	// Credentials are checked before anything network-facing starts.
	keyVar, err := llm.CredentialVar(provider)
	if err != nil {
		return common.NewUserError(fmt.Sprintf("unsupported provider %q (use openrouter or requesty)", provider), err)
	}
	apiKey, err := config.RequireEnv(keyVar)
	if err != nil {
		return common.NewUserError(fmt.Sprintf("set %s in the environment or a .env file", keyVar), err)
	}

	var folderMap *mapping.FolderMap
	if mapPath != "" {
		folderMap, err = mapping.Load(config.ExpandPath(mapPath))
		if err != nil {
			return common.NewUserError("could not load the domain-folder map", err)
		}
		slog.Info("Loaded domain-folder map", "entries", folderMap.Len())
	}

	slog.Info("Reading input file", "path", input)
	items, err := vault.ReadExport(input)
	if err != nil {
		return common.NewUserError("could not read the vault export", err)
	}
	slog.Info("Found items to categorize", "count", len(items))

	client, err := llm.NewClient(llm.Config{
		Provider: provider,
		APIKey:   apiKey,
		Model:    viper.GetString("classify.model"),
		Timeout:  60 * time.Second,
	})
	if err != nil {
		return err
	}

	batchSize := viper.GetInt("classify.batch_size")
	if batchSize <= 0 {
		batchSize = 10
	}
	totalBatches := (len(items) + batchSize - 1) / batchSize
	bar := newBatchProgressBar(totalBatches)

	opts := engine.DefaultOptions()
	opts.BatchSize = batchSize
	opts.ProbeWorkers = viper.GetInt("classify.probe_workers")
	opts.OnBatchDone = func(_, _ int) {
		if err := bar.Add(1); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	}

	prober := netcheck.NewProber(viper.GetDuration("classify.probe_timeout"))
	rules := engine.NewRuleClassifier(folderMap, netcheck.NewDetector(nil), prober)
	classifier := llm.NewClassifier(client, llm.DefaultRetryOptions())

	start := time.Now()
	results, err := engine.New(rules, classifier, opts).Run(ctx, items)
	if err != nil {
		return fmt.Errorf("classification run failed: %w", err)
	}

	if err := vault.WriteCSV(output, items, results); err != nil {
		return err
	}

	summary := engine.Summarize(results)
	fmt.Fprintln(os.Stdout, renderSummary(summary, output, time.Since(start)))

	return nil
}

func newBatchProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Classifying vault items...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
