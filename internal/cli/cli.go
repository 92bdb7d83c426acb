// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/filemap/internal/config"
	"github.com/temirov/filemap/internal/mapping"
	"github.com/temirov/filemap/internal/services/clipboard"
	"github.com/temirov/filemap/internal/tokenizer"
	"github.com/temirov/filemap/internal/utils"
)

const (
	versionFlagName   = "version"
	verboseFlagName   = "verbose"
	configFlagName    = "config"
	copyFlagName      = "copy"
	tokensFlagName    = "tokens"
	modelFlagName     = "model"
	globalFlagName    = "global"
	forceFlagName     = "force"
	versionTemplate   = "filemap version: %s\n"
	defaultTargetPath = "."

	rootUse              = "filemap [directory]"
	rootShortDescription = "write a Markdown map of a directory tree"
	rootLongDescription  = `filemap walks a directory and writes <name>_file_mapping.md inside it.
The report lists every subdirectory and file as a tree, annotates each directory with the
extensions of the files it holds, and ends with totals for the whole tree.
When no directory is given, report.directory from the configuration is used, then the working directory.`
	rootUsageExample = `  # Map the current directory
  filemap

  # Map a project and copy the report to the clipboard
  filemap --copy ~/projects/site

  # Log an estimated token count for the report
  filemap --tokens --model gpt-4o ./docs`

	initUse              = "init"
	initShortDescription = "write a default configuration file"
	initLongDescription  = `Write the default configuration to ./.filemap.yaml, or to ~/.filemap/config.yaml with --global.`

	versionFlagDescription = "display application version"
	verboseFlagDescription = "log every visited directory"
	configFlagDescription  = "configuration file to use instead of ./.filemap.yaml"
	copyFlagDescription    = "copy the report to the clipboard"
	tokensFlagDescription  = "log an estimated token count of the report"
	modelFlagDescription   = "tokenizer model used with --tokens"
	globalFlagDescription  = "write the global configuration"
	forceFlagDescription   = "overwrite an existing configuration file"

	configurationWrittenFormat = "Configuration written to %s\n"
	errorLoadConfigFormat      = "load configuration: %w"
	errorVerboseLoggerFormat   = "initialize verbose logger: %w"
)

// CounterFactory creates token counters for the --tokens option.
type CounterFactory func(tokenizer.Config) (tokenizer.Counter, string, error)

// Dependencies are the collaborators used by the commands.
type Dependencies struct {
	Logger     *zap.Logger
	Copier     clipboard.Copier
	NewCounter CounterFactory
}

// reportOptions stores flag values for the report command.
type reportOptions struct {
	configPath    string
	copyEnabled   bool
	tokensEnabled bool
	tokenModel    string
	verbose       bool
}

// Execute runs the filemap application with the process arguments.
func Execute(dependencies Dependencies) error {
	rootCommand := NewRootCommand(dependencies)
	rootCommand.SetArgs(normalizeToggleArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// NewRootCommand builds the root Cobra command.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	var showVersion bool
	var options reportOptions
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
			if options.verbose {
				verboseLogger, loggerError := utils.NewApplicationLogger(true)
				if loggerError != nil {
					return fmt.Errorf(errorVerboseLoggerFormat, loggerError)
				}
				dependencies.Logger = verboseLogger
			}
			return nil
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return runReport(command, arguments, options, dependencies)
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.PersistentFlags().BoolVarP(&options.verbose, verboseFlagName, "v", false, verboseFlagDescription)
	rootCommand.Flags().StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	registerToggleFlag(rootCommand.Flags(), &options.copyEnabled, copyFlagName, copyFlagDescription)
	registerToggleFlag(rootCommand.Flags(), &options.tokensEnabled, tokensFlagName, tokensFlagDescription)
	rootCommand.Flags().StringVar(&options.tokenModel, modelFlagName, tokenizer.DefaultModel, modelFlagDescription)

	rootCommand.AddCommand(createInitCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createInitCommand returns the init subcommand.
func createInitCommand() *cobra.Command {
	var globalTarget bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if globalTarget {
				target = config.InitTargetGlobal
			}
			writtenPath, initError := config.InitializeConfiguration(config.InitOptions{Target: target, Force: force})
			if initError != nil {
				return initError
			}
			fmt.Fprintf(command.OutOrStdout(), configurationWrittenFormat, writtenPath)
			return nil
		},
	}
	initCommand.Flags().BoolVar(&globalTarget, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&force, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// runReport resolves settings, writes the report, and performs the optional follow-up actions.
func runReport(command *cobra.Command, arguments []string, options reportOptions, dependencies Dependencies) error {
	configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: options.configPath})
	if configurationError != nil {
		return fmt.Errorf(errorLoadConfigFormat, configurationError)
	}
	settings := resolveReportSettings(command, arguments, options, configuration.Report)

	reporter := mapping.NewReporter(dependencies.Logger)
	result, reportError := reporter.GenerateReport(settings.targetDirectory)
	if reportError != nil {
		return reportError
	}
	fmt.Fprintln(command.OutOrStdout(), result.Message())

	if settings.tokensEnabled {
		logTokenEstimate(dependencies, settings.tokenModel, result)
	}
	if settings.copyEnabled {
		copyReport(dependencies, result)
	}
	return nil
}

type reportSettings struct {
	targetDirectory string
	copyEnabled     bool
	tokensEnabled   bool
	tokenModel      string
}

// resolveReportSettings applies flag > configuration > default precedence.
func resolveReportSettings(command *cobra.Command, arguments []string, options reportOptions, configuration config.ReportConfiguration) reportSettings {
	settings := reportSettings{
		targetDirectory: defaultTargetPath,
		copyEnabled:     config.BoolValue(configuration.Copy, false),
		tokensEnabled:   config.BoolValue(configuration.Tokens.Enabled, false),
		tokenModel:      tokenizer.DefaultModel,
	}
	if strings.TrimSpace(configuration.Directory) != "" {
		settings.targetDirectory = configuration.Directory
	}
	if len(arguments) == 1 {
		settings.targetDirectory = arguments[0]
	}
	if configuration.Tokens.Model != "" {
		settings.tokenModel = configuration.Tokens.Model
	}

	flags := command.Flags()
	if flags.Changed(copyFlagName) {
		settings.copyEnabled = options.copyEnabled
	}
	if flags.Changed(tokensFlagName) {
		settings.tokensEnabled = options.tokensEnabled
	}
	if flags.Changed(modelFlagName) {
		settings.tokenModel = options.tokenModel
	}
	return settings
}

// logTokenEstimate reports the token count of the saved report. Failures are logged, not returned,
// because the report has already been written.
func logTokenEstimate(dependencies Dependencies, model string, result mapping.Result) {
	if dependencies.NewCounter == nil {
		return
	}
	counter, resolvedModel, counterError := dependencies.NewCounter(tokenizer.Config{Model: model})
	if counterError != nil {
		dependencies.Logger.Warn("token counting unavailable", zap.Error(counterError))
		return
	}
	tokenCount, countError := tokenizer.CountText(counter, result.Document.String())
	if countError != nil {
		dependencies.Logger.Warn("token counting failed", zap.String("path", result.OutputPath), zap.Error(countError))
		return
	}
	dependencies.Logger.Info("estimated report tokens",
		zap.Int("tokens", tokenCount),
		zap.String("model", resolvedModel),
	)
}

// copyReport places the report text on the clipboard. Failures are logged, not returned.
func copyReport(dependencies Dependencies, result mapping.Result) {
	if dependencies.Copier == nil {
		return
	}
	if copyError := dependencies.Copier.Copy(result.Document.String()); copyError != nil {
		dependencies.Logger.Warn("copy to clipboard failed", zap.Error(copyError))
		return
	}
	dependencies.Logger.Info("report copied to clipboard", zap.String("path", result.OutputPath))
}
