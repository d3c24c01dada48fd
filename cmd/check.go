package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reef-lang/reeflint/formatter"
	"github.com/reef-lang/reeflint/internal"
	tt "github.com/reef-lang/reeflint/internal/types"
	"github.com/reef-lang/reeflint/lint"
)

var (
	ignoreRules     string
	ignorePaths     string
	checkJSONOutput bool
	outPath         string
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Report simplifiable code without changing it",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, config, err := lint.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize lint engine", zap.Error(err))
		}

		if ignoreRules != "" {
			for _, rule := range strings.Split(ignoreRules, ",") {
				engine.IgnoreRule(strings.TrimSpace(rule))
			}
		}

		skip := config.IgnorePaths
		if ignorePaths != "" {
			for _, path := range strings.Split(ignorePaths, ",") {
				skip = append(skip, strings.TrimSpace(path))
			}
		}

		runCheck(ctx, logger, engine, args, skip, checkJSONOutput, outPath)
	},
}

func init() {
	checkCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of rules to ignore")
	checkCmd.Flags().StringVar(&ignorePaths, "ignore-paths", "", "Comma-separated list of paths to ignore")
	checkCmd.Flags().BoolVar(&checkJSONOutput, "json", false, "Output findings in JSON format")
	checkCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

func runCheck(ctx context.Context, logger *zap.Logger, engine lint.Engine, paths, ignorePaths []string, isJSON bool, jsonOutput string) {
	findings, err := lint.ProcessFiles(ctx, logger, engine, paths, ignorePaths)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		os.Exit(1)
	}

	printFindings(logger, findings, isJSON, jsonOutput)

	for _, f := range findings {
		if f.Severity == tt.SeverityError {
			os.Exit(1)
		}
	}
}

func printFindings(logger *zap.Logger, findings []tt.Finding, isJSON bool, jsonOutput string) {
	findingsByFile := make(map[string][]tt.Finding)
	for _, f := range findings {
		findingsByFile[f.Filename] = append(findingsByFile[f.Filename], f)
	}

	sortedFiles := make([]string, 0, len(findingsByFile))
	for filename := range findingsByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	if !isJSON {
		for _, filename := range sortedFiles {
			sourceCode, err := internal.ReadSourceCode(filename)
			if err != nil {
				logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
				continue
			}
			fmt.Println(formatter.GenerateFormattedFindings(findingsByFile[filename], sourceCode))
		}
		return
	}

	d, err := json.Marshal(findingsByFile)
	if err != nil {
		logger.Error("Error marshalling findings to JSON", zap.Error(err))
		return
	}
	if jsonOutput == "" {
		fmt.Println(string(d))
		return
	}
	if err := os.WriteFile(jsonOutput, d, 0o644); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
}
