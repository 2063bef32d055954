// Package main contains the asentar CLI commands.
package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/asentar-dev/asentar/internal/classifier"
	"github.com/asentar-dev/asentar/internal/cli"
	"github.com/asentar-dev/asentar/internal/common"
	"github.com/asentar-dev/asentar/internal/config"
	"github.com/asentar-dev/asentar/internal/engine"
	"github.com/asentar-dev/asentar/internal/model"
)

func predictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict <description>",
		Short: "Predict the debit/credit pair for a journal entry",
		Long: `Predict which accounts a journal entry should debit and credit from a
free-text description, along with the amount and currency found in the text.

Examples:
  asentar predict "Pago de sueldos 3.500,00 Bs"
  asentar predict --threshold 0.6 "Venta de mercadería 1.200 USD"
  asentar predict --model ./model.gob "Aporte de capital"`,
		Args: cobra.ExactArgs(1),
		RunE: runPredict,
	}

	// Flags
	cmd.Flags().StringP("model", "m", "", "Path to the trained classification model")
	cmd.Flags().Float64P("threshold", "t", model.DefaultThreshold, "Minimum confidence for a candidate account")

	// Bind to viper (errors are rare and can be ignored in practice)
	_ = viper.BindPFlag("model.path", cmd.Flags().Lookup("model"))
	_ = viper.BindPFlag("prediction.threshold", cmd.Flags().Lookup("threshold"))

	return cmd
}

func runPredict(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	description := args[0]

	modelPath := viper.GetString("model.path")
	if modelPath == "" {
		modelPath = "$HOME/.local/share/asentar/model.gob"
	}
	modelPath = config.ExpandPath(modelPath)

	clf, err := classifier.NewClassifier(classifier.Config{
		Provider:  viper.GetString("model.provider"),
		ModelPath: modelPath,
	}, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to create classifier: %w", err)
	}
	defer func() {
		if closeErr := clf.Close(); closeErr != nil {
			slog.Error("Failed to close classifier", "error", closeErr)
		}
	}()

	// Eager load, tolerating failure: prediction retries the load itself.
	if warmErr := clf.Warm(ctx); warmErr != nil {
		slog.Warn("Classification model could not be loaded yet",
			"model_path", modelPath,
			"error", warmErr)
	}

	eng := engine.NewWithConfig(clf, engine.Config{
		Threshold: viper.GetFloat64("prediction.threshold"),
	})

	result, err := eng.Predict(ctx, description)
	if err != nil {
		return common.NewUserError("could not predict a journal entry", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderResult(result))
	return nil
}

func renderResult(result *model.PredictionResult) string {
	if !result.Success {
		lines := []string{cli.ErrorStyle.Render(result.Error)}
		for _, p := range result.RawPredictions {
			lines = append(lines, cli.SubtleStyle.Render(fmt.Sprintf("  %s  %.3f", p.Code, p.Confidence)))
		}
		return strings.Join(lines, "\n")
	}

	entry := fmt.Sprintf("Debit:      %s\nCredit:     %s\nAmount:     %s %s\nConfidence: %.3f",
		result.Debit,
		result.Credit,
		result.Amount.StringFixed(2),
		result.Currency,
		result.Confidence)

	out := cli.TitleStyle.Render("Suggested journal entry") + "\n" + cli.BoxStyle.Render(entry)

	if result.Warning != "" {
		out += "\n" + cli.WarningStyle.Render(result.Warning)
	}

	return out
}
