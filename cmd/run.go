package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/job-advisor/internal/advisor"
	"github.com/spigell/job-advisor/internal/ai"
	"github.com/spigell/job-advisor/internal/ai/gemini"
	aplogger "github.com/spigell/job-advisor/internal/logger"
	"github.com/spigell/job-advisor/internal/scoring"
	"github.com/spigell/job-advisor/internal/secrets"
	"github.com/spigell/job-advisor/internal/store"
)

const (
	PromptShowAdvices = "Show recommended advices"
	PromptJobBoards   = "Show job boards"
	PromptExplain     = "Explain the top advice"
	PromptDump        = "Dump results to file"
	PromptExit        = "Exit"

	batchConcurrency = 4
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowAdvices, PromptJobBoards, PromptExplain, PromptDump, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run [subject files]",
	Short: "Evaluate subjects against the advice catalog",
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("auto-approve", "y", false, "print the results and skip the interactive menu")
	runCmd.Flags().StringP("subjects", "s", "", "subject file or directory with subject files")

	viper.BindPFlag("subjects", runCmd.Flags().Lookup("subjects"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	logger, err := aplogger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the job-advisor", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.Store == "" {
		logger.Fatal("a sqlite database path is required under the 'store' key")
	}
	if config.Modules == "" {
		logger.Fatal("an advice modules file is required under the 'modules' key")
	}

	st, err := store.OpenSQLite(config.Store)
	if err != nil {
		logger.Fatal("opening the store", zap.String("path", config.Store), zap.Error(err))
	}
	defer st.Close()

	modules, err := advisor.LoadModules(config.Modules)
	if err != nil {
		logger.Fatal("loading advice modules", zap.Error(err))
	}

	logger.Info("loaded advice modules", zap.Int("count", len(modules)))

	paths, err := subjectPaths(viper.GetString("subjects"), args)
	if err != nil {
		logger.Fatal("collecting subject files", zap.Error(err))
	}

	registry := scoring.NewRegistry()

	explainer, err := prepareExplainer(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("running without the AI explainer", zap.Error(err))
	}

	if len(paths) > 1 {
		if err := runBatch(ctx, paths, st, registry, modules, logger); err != nil {
			logger.Fatal("batch evaluation failed", zap.Error(err))
		}
		return
	}

	subject, err := advisor.LoadSubject(paths[0])
	if err != nil {
		logger.Fatal("loading the subject", zap.String("subject", paths[0]), zap.Error(err))
	}

	p := scoring.NewContext(ctx, subject, st, registry, logger)
	advices := scoring.EvaluateModules(p, modules)

	logger.Info("evaluated the subject",
		zap.String("subject", paths[0]),
		zap.Int("advices", len(advices)),
	)

	if len(advices) == 0 {
		logger.Info("exiting", zap.String("reason", "no advice recommended for this subject"))
		return
	}

	action := PromptShowAdvices
	for {
		var err error
		if cmd.Flag("auto-approve").Value.String() == "true" {
			if err := handleAction(ctx, action, p, subject, advices, explainer, logger); err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
			return
		}

		_, action, err = prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, action, p, subject, advices, explainer, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

// runBatch evaluates many subjects concurrently, one scoring context each.
// The registry and the store are shared: both are safe for concurrent use.
func runBatch(ctx context.Context, paths []string, st store.Store, registry *scoring.Registry, modules []*advisor.AdviceModule, logger *zap.Logger) error {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(batchConcurrency)

	logger.Info("starting batch evaluation", zap.Int("subjects", len(paths)))

	for _, path := range paths {
		group.Go(func() error {
			subject, err := advisor.LoadSubject(path)
			if err != nil {
				return fmt.Errorf("subject %q: %w", path, err)
			}

			p := scoring.NewContext(ctx, subject, st, registry, logger)
			advices := scoring.EvaluateModules(p, modules)

			fields := []zap.Field{
				zap.String("subject", path),
				zap.Int("advices", len(advices)),
			}
			if len(advices) > 0 {
				fields = append(fields,
					zap.String("top_advice", advices[0].ID),
					zap.Float64("top_score", advices[0].Score),
				)
			}
			logger.Info("evaluated the subject", fields...)
			return nil
		})
	}

	return group.Wait()
}

func handleAction(ctx context.Context, action string, p *scoring.Context, subject *advisor.Subject, advices []*scoring.Advice, explainer ai.Explainer, logger *zap.Logger) error {
	switch action {
	case PromptShowAdvices:
		pretty, _ := json.MarshalIndent(advices, "", "  ")
		logger.Info(string(pretty), zap.Int("advices count", len(advices)))
		return nil
	case PromptJobBoards:
		boards := p.ListJobBoards()
		if len(boards) == 0 {
			logger.Info("no job boards matched this subject")
			return nil
		}
		pretty, _ := json.MarshalIndent(boards, "", "  ")
		logger.Info(string(pretty), zap.Int("job boards count", len(boards)))
		return nil
	case PromptExplain:
		if explainer == nil {
			logger.Warn("the AI explainer is not configured",
				zap.String("hint", "enable it under the 'ai' section of the configuration file"),
			)
			return nil
		}
		explanation, err := explainer.Explain(ctx, subject, advices[0])
		if err != nil {
			return fmt.Errorf("explaining advice %q: %w", advices[0].ID, err)
		}
		logger.Info(explanation.Summary,
			zap.String("advice", advices[0].ID),
			zap.String("details", explanation.Details),
		)
		return nil
	case PromptDump:
		filename, err := dumpToTmpFile(advices)
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func prepareExplainer(ctx context.Context, config *AIConfig, log *zap.Logger) (ai.Explainer, error) {
	if config == nil || !config.Enabled {
		return nil, errors.New("ai is not enabled")
	}

	provider := strings.TrimSpace(strings.ToLower(config.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", config.Provider)
	}

	if config.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: config.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	aiLogger := aplogger.WithAIFields(log, "gemini", config.Gemini.Model)

	generator, err := gemini.NewGenerator(ctx, apiKey, config.Gemini.Model, config.Gemini.MaxRetries, aiLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewExplainer(generator, config.Gemini.MaxLogLength, aiLogger), nil
}

// subjectPaths resolves the subject arguments, expanding directories to the
// YAML files they contain.
func subjectPaths(configured string, args []string) ([]string, error) {
	paths := args
	if len(paths) == 0 && configured != "" {
		paths = []string{configured}
	}
	if len(paths) == 0 {
		return nil, errors.New("no subject files given (pass them as arguments or set the 'subjects' key)")
	}

	var out []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, path)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(path, "*.yaml"))
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}

	if len(out) == 0 {
		return nil, errors.New("no subject files found")
	}
	return out, nil
}

func dumpToTmpFile(advices []*scoring.Advice) (string, error) {
	data, err := json.MarshalIndent(advices, "", "  ")
	if err != nil {
		return "", err
	}

	file, err := os.CreateTemp("", app+"-*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return "", err
	}
	return file.Name(), nil
}
