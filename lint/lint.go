// Package lint is the host around the analysis engine: configuration
// loading, directory walking and the parallel per-file driver used by
// the CLI.
package lint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/reef-lang/reeflint/internal"
	tt "github.com/reef-lang/reeflint/internal/types"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Engine is what the host needs from the analysis engine.
type Engine interface {
	Run(filePath string) ([]tt.Finding, error)
	RunSource(filename string, source []byte) ([]tt.Finding, error)
	IgnoreRule(rule string)
}

// Config is the .reeflint.yaml layout.
type Config struct {
	Name        string                   `yaml:"name"`
	Rules       map[string]tt.ConfigRule `yaml:"rules"`
	IgnorePaths []string                 `yaml:"ignore-paths"`
}

// New builds an engine from the configuration file. An empty path means
// defaults: every rule on, at warning severity.
func New(configurationPath string) (*internal.Engine, Config, error) {
	var config Config
	if configurationPath != "" {
		parsed, err := parseConfigurationFile(configurationPath)
		if err != nil {
			return nil, config, err
		}
		config = parsed
	}
	return internal.NewEngine(config.Rules), config, nil
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("parsing %s: %w", configurationPath, err)
	}
	return config, nil
}

// ProcessFiles runs the engine over each path, collecting all findings.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	paths []string,
	ignorePaths []string,
) ([]tt.Finding, error) {
	var allFindings []tt.Finding
	for _, path := range paths {
		findings, err := ProcessPath(ctx, logger, engine, path, ignorePaths)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allFindings = append(allFindings, findings...)
	}
	return allFindings, nil
}

// ProcessPath analyzes one file, or every .reef file under a directory.
// Directory runs fan out over a bounded worker pool and show a progress
// bar; findings come back grouped by file, in file order.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	path string,
	ignorePaths []string,
) ([]tt.Finding, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !hasDesiredExtension(path) {
			return nil, nil
		}
		return engine.Run(path)
	}

	var files []string
	err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() && hasDesiredExtension(filePath) && !ignored(filePath, ignorePaths) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", path, err)
	}
	sort.Strings(files)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	perFile := make([][]tt.Finding, len(files))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, filePath := range files {
		i, filePath := i, filePath
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			findings, err := engine.Run(filePath)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", filePath), zap.Error(err))
				}
				return err
			}
			mu.Lock()
			perFile[i] = findings
			mu.Unlock()
			bar.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	fmt.Println()

	var findings []tt.Finding
	for _, fs := range perFile {
		findings = append(findings, fs...)
	}
	return findings, nil
}

func ignored(path string, ignorePaths []string) bool {
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

func hasDesiredExtension(path string) bool {
	return filepath.Ext(path) == ".reef"
}
