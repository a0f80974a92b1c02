// Package main provides the CLI entry point for sheetpress.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress"
	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/output"
)

var (
	outputPath string
	pretty     bool
	k          int
	vanilla    bool
	configPath string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetpress [input.xlsx]",
		Short: "Compress spreadsheets into compact LLM-ready JSON",
		Long: `sheetpress compresses the content and formatting of a spreadsheet into
a compact JSON encoding (structural anchors, inverted value index,
format and numeric regions) sized to fit a language-model context.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: derived from input)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().IntVar(&k, "k", 2, "Neighborhood radius around structural anchors")
	rootCmd.Flags().BoolVar(&vanilla, "vanilla", false, "Emit the uncompressed baseline encoding instead")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file overriding pipeline configuration")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Log per-sheet progress and diagnostics")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	if vanilla {
		return runVanilla(inputPath, logger)
	}

	opts := sheetpress.DefaultOptions()
	opts.K = &k
	if configPath != "" {
		cfg, err := sheetpress.LoadConfig(configPath)
		if err != nil {
			return err
		}
		opts.Config = &cfg
		opts.K = nil
		if cmd.Flags().Changed("k") {
			opts.K = &k
		}
	}

	doc, diags, err := sheetpress.Encode(inputPath, opts)
	if err != nil {
		return fmt.Errorf("encoding failed: %w", err)
	}

	for _, d := range diags {
		logger.Warn("recovered cell fault", "sheet", d.Sheet, "cell", d.Cell, "stage", d.Stage, "err", d.Err)
	}
	for name, m := range doc.CompressionMetrics.Sheets {
		logger.Debug("sheet encoded", "sheet", name,
			"original_tokens", m.OriginalTokens, "final_tokens", m.FinalTokens,
			"overall_ratio", fmt.Sprintf("%.2fx", m.OverallRatio))
	}
	logger.Info("workbook encoded",
		"sheets", len(doc.Sheets),
		"overall_ratio", fmt.Sprintf("%.2fx", doc.CompressionMetrics.Overall.OverallRatio))

	var jsonData []byte
	if pretty {
		jsonData, err = output.MarshalIndent(doc)
	} else {
		jsonData, err = output.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "_sheetpress.json"
	}
	if outputPath == "-" {
		fmt.Println(string(jsonData))
		return nil
	}
	if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("wrote encoding", "path", outputPath)
	return nil
}

func runVanilla(inputPath string, logger *log.Logger) error {
	sheets, err := sheetpress.VanillaEncode(inputPath)
	if err != nil {
		return fmt.Errorf("vanilla encoding failed: %w", err)
	}

	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "_vanilla.txt"
	}
	if outputPath == "-" {
		for name, content := range sheets {
			fmt.Printf("# %s\n%s\n", name, content)
		}
		return nil
	}

	// Matches the baseline format: the file holds the first sheet only.
	content, err := sheetpress.VanillaFirstSheet(inputPath, sheets)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("wrote vanilla encoding", "path", outputPath)
	return nil
}
