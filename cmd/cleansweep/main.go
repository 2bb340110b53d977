package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cleansweep/cleansweep/internal/aiassist"
	"github.com/cleansweep/cleansweep/internal/cleaner"
	"github.com/cleansweep/cleansweep/internal/config"
	"github.com/cleansweep/cleansweep/internal/platform"
	"github.com/cleansweep/cleansweep/internal/progress"
	"github.com/cleansweep/cleansweep/internal/quickclean"
	"github.com/cleansweep/cleansweep/internal/reporter"
	"github.com/cleansweep/cleansweep/internal/safety"
	"github.com/cleansweep/cleansweep/internal/scanner"
	"github.com/cleansweep/cleansweep/internal/ui"
	"github.com/cleansweep/cleansweep/internal/ui/models"
	"github.com/cleansweep/cleansweep/pkg/utils"
)

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var (
	configPath string
	scanOutput string
	qcOutput   string
	assistFlag bool
	forceFlag  bool
	categories []string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cleansweep",
	Short: "Disk space recovery with layered deletion safety",
	Long: `CleanSweep explores where your disk space went and helps reclaim it safely.
Every path gets a safety tier (green/orange/red) from a rule database, an
optional AI assist, and a heuristic fallback; red-tier paths can never be
deleted through this tool.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default ~/.config/cleansweep/config.yaml)")

	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "table", "output format: table, summary, json, yaml")
	quickCleanCmd.Flags().StringVarP(&qcOutput, "output", "o", "summary", "output format: table, summary, json, yaml")
	quickCleanCmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "limit to specific categories")
	classifyCmd.Flags().BoolVarP(&assistFlag, "assist", "a", false, "consult the AI provider for unclassified paths")
	cleanCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "skip the confirmation prompt")

	rootCmd.AddCommand(scanCmd, quickCleanCmd, classifyCmd, cleanCmd, cacheCmd, tuiCmd)
}

// services wires the core components once per invocation
type services struct {
	settings   *config.Settings
	info       *platform.Info
	verdicts   *safety.Cache
	classifier *safety.Classifier
	engine     *scanner.Engine
	analyzer   *quickclean.Analyzer
	gate       *cleaner.Gate
	executor   *cleaner.Executor
	reporter   *progress.Reporter
}

func buildServices() (*services, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	info, err := platform.GetInfo()
	if err != nil {
		return nil, err
	}

	cachePath, err := config.DefaultVerdictCachePath()
	if err != nil {
		return nil, err
	}
	verdicts, err := safety.OpenCache(cachePath)
	if err != nil {
		return nil, err
	}
	verdicts.SetEnabled(settings.CacheResults())

	var assist safety.Assist
	if settings.AIEnabled() && settings.HasCredential() {
		client, err := aiassist.NewFromConfig(aiassist.BuildConfig{
			Name:   settings.PreferredProvider(),
			APIKey: settings.APIKey(),
		})
		if err != nil {
			return nil, err
		}
		assist = client
	}

	home := info.HomeDir
	classifier := safety.NewClassifier(safety.DefaultRuleTable(home), verdicts, assist, home)
	rep := progress.NewReporter()
	engine := scanner.NewEngine(scanner.NewDirCache(), rep, home)

	return &services{
		settings:   settings,
		info:       info,
		verdicts:   verdicts,
		classifier: classifier,
		engine:     engine,
		analyzer:   quickclean.NewAnalyzer(info, rep),
		gate:       cleaner.NewGate(classifier),
		executor:   cleaner.NewExecutor(engine, rep),
		reporter:   rep,
	}, nil
}

// signalContext cancels on interrupt so long scans drain cleanly
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

var scanCmd = &cobra.Command{
	Use:   "scan [directory]",
	Short: "Scan a directory and show where the space went",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildServices()
		if err != nil {
			return err
		}

		dir := svc.info.HomeDir
		if len(args) > 0 {
			dir = args[0]
		}

		format, err := reporter.ParseFormat(scanOutput)
		if err != nil {
			return err
		}

		ctx, stop := signalContext()
		defer stop()

		result, err := svc.engine.Scan(ctx, dir)
		if err != nil {
			return err
		}
		return reporter.New(cmd.OutOrStdout(), format, svc.classifier.Classify).Scan(result)
	},
}

var quickCleanCmd = &cobra.Command{
	Use:   "quickclean",
	Short: "Analyze well-known locations for reclaimable space",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildServices()
		if err != nil {
			return err
		}

		format, err := reporter.ParseFormat(qcOutput)
		if err != nil {
			return err
		}

		ctx, stop := signalContext()
		defer stop()

		results := svc.analyzer.Analyze(ctx, categories)
		return reporter.New(cmd.OutOrStdout(), format, nil).QuickClean(results)
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify <path>...",
	Short: "Show the safety verdict for one or more paths",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildServices()
		if err != nil {
			return err
		}

		ctx, stop := signalContext()
		defer stop()

		for _, path := range args {
			var v safety.Verdict
			if assistFlag {
				v = svc.classifier.ClassifyWithAssist(ctx, path,
					svc.settings.AIEnabled() && svc.settings.HasCredential())
			} else {
				v = svc.classifier.Classify(path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-7s %s\n        %s", v.Tier, path, v.Reason)
			if v.Source != "" {
				fmt.Fprintf(cmd.OutOrStdout(), " (source: %s)", v.Source)
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean <path>...",
	Short: "Delete paths after validating them against the safety gate",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildServices()
		if err != nil {
			return err
		}

		plan := svc.gate.PlanDeletion(args)
		if plan.Rejected() {
			fmt.Fprintln(cmd.OutOrStdout(), "Deletion blocked; the selection contains forbidden paths:")
			for _, blocked := range plan.Blocked {
				fmt.Fprintf(cmd.OutOrStdout(), "  [red] %s\n        %s\n", blocked.Path, blocked.Verdict.Reason)
			}
			return fmt.Errorf("%d forbidden paths in selection", len(plan.Blocked))
		}

		if !forceFlag {
			fmt.Fprintf(cmd.OutOrStdout(), "About to permanently delete %s. Continue? [y/N] ",
				utils.FormatCount(len(plan.Accepted), "path", "paths"))
			var answer string
			fmt.Fscanln(cmd.InOrStdin(), &answer)
			if answer != "y" && answer != "Y" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		result := svc.executor.Execute(plan.Accepted)
		for _, msg := range result.Messages {
			fmt.Fprintln(cmd.OutOrStdout(), msg)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nDeleted %s, freed %s; %d errors\n",
			utils.FormatCount(result.DeletedCount(), "path", "paths"),
			utils.FormatBytes(int64(result.FreedSize)),
			result.ErrorCount())
		return nil
	},
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the persisted verdict cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop all persisted safety verdicts",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildServices()
		if err != nil {
			return err
		}
		n := svc.verdicts.Len()
		if err := svc.verdicts.Clear(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s.\n", utils.FormatCount(n, "verdict", "verdicts"))
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}

var tuiCmd = &cobra.Command{
	Use:   "tui [directory]",
	Short: "Launch the interactive browser",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildServices()
		if err != nil {
			return err
		}

		dir := svc.info.HomeDir
		if len(args) > 0 {
			dir = args[0]
		}

		return ui.RunInteractive(&models.Services{
			Settings:   svc.settings,
			Info:       svc.info,
			Engine:     svc.engine,
			Classifier: svc.classifier,
			Analyzer:   svc.analyzer,
			Gate:       svc.gate,
			Executor:   svc.executor,
		}, dir)
	},
}
