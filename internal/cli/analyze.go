package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zonewatch-systems/zonewatch/internal/augment"
	"github.com/zonewatch-systems/zonewatch/internal/cli/output"
	"github.com/zonewatch-systems/zonewatch/internal/export"
	"github.com/zonewatch-systems/zonewatch/internal/generator"
	"github.com/zonewatch-systems/zonewatch/internal/logging"
	"github.com/zonewatch-systems/zonewatch/internal/models"
	"github.com/zonewatch-systems/zonewatch/internal/pipeline"
	"github.com/zonewatch-systems/zonewatch/internal/service"
)

var (
	analyzeEventsFile string
	analyzeJSON       bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the analysis pipeline over an events file",
	Long: `Runs violation detection, risk scoring, and augmentation over the given
events file and prints the resulting daily report. Without --events a fresh
synthetic dataset is generated first.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeEventsFile, "events", "e", "", "events JSON file (default: generate synthetic data)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the full report as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := logging.New(cfg.Logging)

	capability := augment.NewCapability(cfg.Augment)
	if _, disabled := capability.(augment.NoopCapability); disabled {
		output.Warn("no augmentation credentials configured; narratives will use fallback text")
	}

	exporter, err := export.New(cfg.Data.Dir)
	if err != nil {
		return err
	}

	pipe := pipeline.New(cfg, capability, logger)
	gen := generator.New(cfg, 0)
	svc := service.New(cfg, pipe, gen, exporter, logger)

	var report *models.DailyReport
	if analyzeEventsFile == "" {
		report, err = svc.GenerateAndAnalyze(cmd.Context())
	} else {
		var events []models.Event
		data, readErr := os.ReadFile(analyzeEventsFile)
		if readErr != nil {
			return readErr
		}
		if err := json.Unmarshal(data, &events); err != nil {
			return fmt.Errorf("failed to parse events file: %w", err)
		}
		report, err = svc.Analyze(cmd.Context(), events)
	}
	if err != nil {
		return err
	}

	if analyzeJSON {
		return output.JSON(report)
	}

	printReport(report)
	return nil
}

func printReport(report *models.DailyReport) {
	output.Info("Daily report %s — %d events, %d incidents", report.ID, len(report.Events), len(report.Analysis))
	fmt.Println()

	if len(report.Analysis) == 0 {
		output.Success("no incidents detected")
		return
	}

	table := output.NewTable([]string{"PERSON", "ISSUES", "RISK", "SUMMARY"})
	for _, incident := range report.Analysis {
		table.AddRow([]string{
			incident.PersonName,
			incident.Issues,
			strconv.Itoa(incident.RiskScore),
			truncate(incident.Summary, 60),
		})
	}
	table.Render()

	fmt.Println()
	stats := report.UsageStats
	output.Info("usage: %d tokens (%d in / %d out), cost $%s (%s)",
		stats.TotalTokens, stats.InputTokens, stats.OutputTokens, stats.TotalCost, stats.Model)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
