package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/prebid/adstxt/adstxt"
	"github.com/prebid/adstxt/config"
	"github.com/prebid/adstxt/errortypes"
	"github.com/prebid/adstxt/logger"
	"github.com/prebid/adstxt/metrics"
	metricsConf "github.com/prebid/adstxt/metrics/config"
	"github.com/prebid/adstxt/util/timeutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// app carries the state shared by every subcommand of a single invocation.
type app struct {
	v   *viper.Viper
	in  io.Reader
	out io.Writer

	cfg           *config.Configuration
	metricsEngine *metricsConf.DetailedMetricsEngine
	clock         timeutil.Time
}

func newRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{v: viper.New(), in: in, out: out, clock: &timeutil.RealTime{}}

	var configFile string
	root := &cobra.Command{
		Use:           "adstxt",
		Short:         "Parse, generate and lint ads.txt files",
		Version:       Rev,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(configFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default: ./adstxt.yaml or /etc/adstxt/adstxt.yaml if present)")
	flags.String("invalid-line-action", string(adstxt.InvalidLineActionFilter), "what to do with invalid lines: filter or throw")
	flags.String("header", "", "comment block written before the generated content")
	flags.String("footer", "", "comment block written after the generated content")
	flags.String("output", config.OutputFormatJSON, "manifest output format: json or yaml")
	a.v.BindPFlag("invalid_line_action", flags.Lookup("invalid-line-action"))
	a.v.BindPFlag("header", flags.Lookup("header"))
	a.v.BindPFlag("footer", flags.Lookup("footer"))
	a.v.BindPFlag("output_format", flags.Lookup("output"))

	root.AddCommand(a.parseCommand(), a.generateCommand(), a.fmtCommand(), a.lintCommand())
	return root
}

func (a *app) loadConfig(configFile string) error {
	if configFile != "" {
		a.v.SetConfigFile(configFile)
		config.SetupViper(a.v, "")
	} else {
		config.SetupViper(a.v, configFileName)
	}
	if err := config.ReadInConfig(a.v); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	cfg, err := config.New(a.v)
	if err != nil {
		return fmt.Errorf("configuration could not be loaded or did not pass validation: %w", err)
	}
	a.cfg = cfg
	a.metricsEngine = metricsConf.NewMetricsEngine(cfg)
	return nil
}

func (a *app) parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse an ads.txt file and print its manifest",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(metrics.OperationParse, func() error {
				manifest, err := a.parse(args)
				if err != nil {
					return err
				}
				return a.writeManifest(manifest)
			})
		},
	}
}

func (a *app) generateCommand() *cobra.Command {
	var inputFormat string
	cmd := &cobra.Command{
		Use:   "generate [manifest]",
		Short: "Generate an ads.txt file from a JSON or YAML manifest",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(metrics.OperationGenerate, func() error {
				manifest, err := a.readManifest(args, inputFormat)
				if err != nil {
					return err
				}
				a.recordManifest(manifest)
				return a.generate(manifest)
			})
		},
	}
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "manifest format: json or yaml (default: from the file extension, json for stdin)")
	return cmd
}

func (a *app) fmtCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [file]",
		Short: "Rewrite an ads.txt file in canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(metrics.OperationFormat, func() error {
				manifest, err := a.parse(args)
				if err != nil {
					return err
				}
				return a.generate(manifest)
			})
		},
	}
}

func (a *app) lintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lint [file]",
		Short: "Report every invalid line of an ads.txt file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(metrics.OperationLint, func() error {
				text, err := a.readInput(args)
				if err != nil {
					return err
				}
				report, err := a.inspect(text)
				if err != nil {
					return err
				}
				for _, warning := range errortypes.WarningOnly(report.Problems) {
					logger.Warnf("%v", warning)
				}
				for _, kind := range adstxt.LineKinds {
					fmt.Fprintf(a.out, "%s\t%d\n", kind, report.Lines[kind])
				}
				if !report.Valid() {
					return errortypes.NewAggregateErrors("invalid ads.txt lines", errortypes.FatalOnly(report.Problems))
				}
				return nil
			})
		},
	}
}

// run executes op, records its outcome and duration, and exports the metrics.
func (a *app) run(op metrics.OperationType, f func() error) error {
	start := a.clock.Now()
	err := f()

	labels := metrics.OperationLabels{Operation: op, Status: operationStatus(err)}
	a.metricsEngine.RecordOperation(labels)
	a.metricsEngine.RecordOperationTime(labels, a.clock.Now().Sub(start))

	if exportErr := a.metricsEngine.Export(); exportErr != nil {
		logger.Errorf("%v", exportErr)
	}
	return err
}

func operationStatus(err error) metrics.OperationStatus {
	if err == nil {
		return metrics.OperationStatusOK
	}
	if _, ok := err.(errortypes.AggregateErrors); ok {
		return metrics.OperationStatusBadInput
	}
	switch errortypes.ReadCode(err) {
	case errortypes.ConfigurationErrorCode, errortypes.ParseErrorCode, errortypes.ValidationErrorCode:
		return metrics.OperationStatusBadInput
	default:
		return metrics.OperationStatusErr
	}
}

func (a *app) parse(args []string) (adstxt.Manifest, error) {
	text, err := a.readInput(args)
	if err != nil {
		return adstxt.Manifest{}, err
	}
	if _, err := a.inspect(text); err != nil {
		return adstxt.Manifest{}, err
	}

	manifest, err := adstxt.ParseAdsTxt(text, a.cfg.ParseOptions())
	if err != nil {
		return adstxt.Manifest{}, err
	}
	a.recordManifest(manifest)
	logger.Debugf("Parsed %d entries and %d variables", len(manifest.Entries), manifest.Variables.Len())
	return manifest, nil
}

// inspect classifies text under the configured invalid line action and records the line counts.
func (a *app) inspect(text string) (adstxt.Report, error) {
	report, err := adstxt.Inspect(text, a.cfg.ParseOptions())
	if err != nil {
		return adstxt.Report{}, err
	}
	for kind, count := range report.Lines {
		a.metricsEngine.RecordLines(metrics.LineType(kind.String()), count)
	}
	return report, nil
}

func (a *app) recordManifest(manifest adstxt.Manifest) {
	recordManifestTo(a.metricsEngine, manifest)
}

func recordManifestTo(engine metrics.MetricsEngine, manifest adstxt.Manifest) {
	counts := make(map[metrics.AccountType]int, 2)
	for _, entry := range manifest.Entries {
		counts[metrics.AccountType(strings.ToUpper(string(entry.AccountType)))]++
	}
	for accountType, count := range counts {
		engine.RecordEntries(accountType, count)
	}
	engine.RecordVariables(manifest.Variables.Len())
}

func (a *app) generate(manifest adstxt.Manifest) error {
	text, err := adstxt.GenerateAdsTxt(manifest, a.cfg.Header, a.cfg.Footer)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	_, err = fmt.Fprintln(a.out, text)
	return err
}

func (a *app) writeManifest(manifest adstxt.Manifest) error {
	var (
		out []byte
		err error
	)
	switch a.cfg.OutputFormat {
	case config.OutputFormatYAML:
		out, err = yaml.Marshal(manifest)
	default:
		out, err = json.MarshalIndent(manifest, "", "  ")
		out = append(out, '\n')
	}
	if err != nil {
		return err
	}
	_, err = a.out.Write(out)
	return err
}

func (a *app) readManifest(args []string, format string) (adstxt.Manifest, error) {
	data, err := a.readInput(args)
	if err != nil {
		return adstxt.Manifest{}, err
	}

	if format == "" && len(args) > 0 {
		switch strings.ToLower(filepath.Ext(args[0])) {
		case ".yaml", ".yml":
			format = config.OutputFormatYAML
		}
	}

	var manifest adstxt.Manifest
	switch format {
	case "", config.OutputFormatJSON:
		err = json.Unmarshal([]byte(data), &manifest)
	case config.OutputFormatYAML:
		err = yaml.Unmarshal([]byte(data), &manifest)
	default:
		return adstxt.Manifest{}, &errortypes.ConfigurationError{
			Message: fmt.Sprintf("input-format must be 'json' or 'yaml'. Got %q", format),
		}
	}
	if err != nil {
		return adstxt.Manifest{}, &errortypes.ValidationError{
			Message: fmt.Sprintf("Failed reading manifest: %v", err),
		}
	}
	return manifest, nil
}

// readInput returns the contents of the file named by args, or of the command input when no
// file or "-" is given.
func (a *app) readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(a.in)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}
