package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang/glog"
	"github.com/prebid/adstxt/adstxt"
	"github.com/prebid/adstxt/errortypes"
	"github.com/spf13/viper"
)

// Configuration holds the settings of the adstxt command line tool.
type Configuration struct {
	InvalidLineAction string  `mapstructure:"invalid_line_action"`
	Header            string  `mapstructure:"header"`
	Footer            string  `mapstructure:"footer"`
	OutputFormat      string  `mapstructure:"output_format"`
	Metrics           Metrics `mapstructure:"metrics"`
}

// Metrics selects the engine the tool records line and operation counts with.
type Metrics struct {
	// Type is one of "none", "prometheus" or "gometrics".
	Type      string `mapstructure:"type"`
	Namespace string `mapstructure:"namespace"`
	Subsystem string `mapstructure:"subsystem"`
	// Textfile, when set, receives the collected metrics once the command finishes.
	Textfile string `mapstructure:"textfile"`
}

const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	MetricsTypeNone       = "none"
	MetricsTypePrometheus = "prometheus"
	MetricsTypeGoMetrics  = "gometrics"
)

// ParseOptions returns the parser options described by the configuration.
func (cfg *Configuration) ParseOptions() adstxt.ParseOptions {
	return adstxt.ParseOptions{InvalidLineAction: adstxt.InvalidLineAction(cfg.InvalidLineAction)}
}

func (cfg *Configuration) validate(errs []error) []error {
	switch adstxt.InvalidLineAction(cfg.InvalidLineAction) {
	case adstxt.InvalidLineActionFilter, adstxt.InvalidLineActionThrow:
	default:
		errs = append(errs, &errortypes.ConfigurationError{
			Message: fmt.Sprintf("invalid_line_action must be 'filter' or 'throw'. Got %q", cfg.InvalidLineAction),
		})
	}
	switch cfg.OutputFormat {
	case OutputFormatJSON, OutputFormatYAML:
	default:
		errs = append(errs, &errortypes.ConfigurationError{
			Message: fmt.Sprintf("output_format must be 'json' or 'yaml'. Got %q", cfg.OutputFormat),
		})
	}
	return cfg.Metrics.validate(errs)
}

func (m *Metrics) validate(errs []error) []error {
	switch m.Type {
	case MetricsTypeNone, MetricsTypePrometheus, MetricsTypeGoMetrics:
	default:
		errs = append(errs, &errortypes.ConfigurationError{
			Message: fmt.Sprintf("metrics.type must be one of 'none', 'prometheus' or 'gometrics'. Got %q", m.Type),
		})
	}
	if m.Type == MetricsTypeNone && m.Textfile != "" {
		glog.Warningf("metrics.textfile %q is ignored because metrics.type is none", m.Textfile)
	}
	return errs
}

// New uses viper to get our configuration. Every validation failure is reported at once.
func New(v *viper.Viper) (*Configuration, error) {
	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("viper failed to unmarshal app config: %v", err)
	}

	if errs := c.validate(nil); len(errs) > 0 {
		return &c, errortypes.NewAggregateErrors("validation errors", errs)
	}
	return &c, nil
}

// SetupViper registers defaults and environment bindings. A non-empty filename is looked up,
// without extension, in the working directory and /etc/adstxt.
func SetupViper(v *viper.Viper, filename string) {
	if filename != "" {
		v.SetConfigName(filename)
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/adstxt")
	}

	v.SetDefault("invalid_line_action", string(adstxt.InvalidLineActionFilter))
	v.SetDefault("header", "")
	v.SetDefault("footer", "")
	v.SetDefault("output_format", OutputFormatJSON)
	v.SetDefault("metrics.type", MetricsTypeNone)
	v.SetDefault("metrics.namespace", "adstxt")
	v.SetDefault("metrics.subsystem", "")
	v.SetDefault("metrics.textfile", "")

	v.SetEnvPrefix("ADSTXT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// ReadInConfig loads the configuration file, if any. A file that is looked up by name and not
// found is not an error; an explicitly set file that cannot be read is.
func ReadInConfig(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		glog.Infof("Using config file %s", v.ConfigFileUsed())
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		glog.V(1).Infof("No config file found, using defaults: %v", err)
		return nil
	}
	return err
}
