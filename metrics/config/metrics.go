package config

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	mainConfig "github.com/prebid/adstxt/config"
	"github.com/prebid/adstxt/metrics"
	prometheusmetrics "github.com/prebid/adstxt/metrics/prometheus"
	gometrics "github.com/rcrowley/go-metrics"
)

// NewMetricsEngine reads the configuration and returns the appropriate metrics engine
// for this instance.
func NewMetricsEngine(cfg *mainConfig.Configuration) *DetailedMetricsEngine {
	engine := &DetailedMetricsEngine{textfile: cfg.Metrics.Textfile}

	switch cfg.Metrics.Type {
	case mainConfig.MetricsTypePrometheus:
		engine.PrometheusMetrics = prometheusmetrics.NewMetrics(cfg.Metrics)
		engine.MetricsEngine = engine.PrometheusMetrics
	case mainConfig.MetricsTypeGoMetrics:
		prefix := cfg.Metrics.Namespace
		if prefix != "" {
			prefix += "."
		}
		engine.GoMetrics = metrics.NewMetrics(gometrics.NewPrefixedRegistry(prefix))
		engine.MetricsEngine = engine.GoMetrics
	default:
		engine.MetricsEngine = &DummyMetricsEngine{}
	}
	return engine
}

// DetailedMetricsEngine is a MetricsEngine that preserves links to the underlying metrics engines.
type DetailedMetricsEngine struct {
	metrics.MetricsEngine
	GoMetrics         *metrics.Metrics
	PrometheusMetrics *prometheusmetrics.Metrics

	textfile string
}

// Export writes the collected metrics to the configured text file. It does nothing when no file
// or no engine is configured.
func (me *DetailedMetricsEngine) Export() error {
	if me.textfile == "" {
		return nil
	}

	switch {
	case me.PrometheusMetrics != nil:
		if err := me.PrometheusMetrics.WriteTextfile(me.textfile); err != nil {
			return fmt.Errorf("writing prometheus metrics to %s: %w", me.textfile, err)
		}
	case me.GoMetrics != nil:
		file, err := os.Create(me.textfile)
		if err != nil {
			return fmt.Errorf("writing go-metrics to %s: %w", me.textfile, err)
		}
		me.GoMetrics.Write(file)
		if err := file.Close(); err != nil {
			return fmt.Errorf("writing go-metrics to %s: %w", me.textfile, err)
		}
	default:
		return nil
	}

	glog.V(1).Infof("Metrics written to %s", me.textfile)
	return nil
}

// DummyMetricsEngine is a Noop metrics engine in case no metrics are configured.
type DummyMetricsEngine struct {
	metrics.NilMetricsEngine
}
