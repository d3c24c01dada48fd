package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reef-lang/reeflint/internal/fixer"
	"github.com/reef-lang/reeflint/lint"
)

var dryRun bool

var fixCmd = &cobra.Command{
	Use:   "fix [paths...]",
	Short: "Apply the suggested fixes in place",
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

		runAutoFix(ctx, logger, engine, args, config.IgnorePaths, dryRun)
	},
}

func init() {
	fixCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show fixes without applying them")
}

func runAutoFix(ctx context.Context, logger *zap.Logger, engine lint.Engine, paths, ignorePaths []string, dryRun bool) {
	fix := fixer.New(engine, dryRun)

	total := 0
	for _, path := range paths {
		files, err := collectFiles(path, ignorePaths)
		if err != nil {
			logger.Error("error collecting files", zap.String("path", path), zap.Error(err))
			continue
		}
		for _, file := range files {
			if err := ctx.Err(); err != nil {
				logger.Error("fix interrupted", zap.Error(err))
				return
			}
			applied, err := fix.Fix(file)
			if err != nil {
				logger.Error("error fixing file", zap.String("file", file), zap.Error(err))
				continue
			}
			if applied > 0 {
				fmt.Printf("Fixed %d issue(s) in %s\n", applied, file)
				total += applied
			}
		}
	}
	if total == 0 {
		fmt.Println("Nothing to fix")
	}
}

func collectFiles(path string, ignorePaths []string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	var files []string
	err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() && filepath.Ext(filePath) == ".reef" && !ignoredPath(filePath, ignorePaths) {
			files = append(files, filePath)
		}
		return nil
	})
	return files, err
}

func ignoredPath(path string, ignorePaths []string) bool {
	for _, pattern := range ignorePaths {
		if ok, err := filepath.Match(pattern, path); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(pattern, filepath.Base(path)); err == nil && ok {
			return true
		}
	}
	return false
}
