package metrics

import (
	"io"
	"time"

	gometrics "github.com/rcrowley/go-metrics"
)

// Metrics is the go-metrics backed MetricsEngine.
type Metrics struct {
	MetricsRegistry gometrics.Registry

	OperationMeters map[OperationType]map[OperationStatus]gometrics.Meter
	OperationTimers map[OperationType]gometrics.Timer
	LineCounters    map[LineType]gometrics.Counter
	EntryCounters   map[AccountType]gometrics.Counter
	VariableCounter gometrics.Counter
}

// NewMetrics creates a new Metrics object with all metrics registered up front, so that a run
// which never sees an entry still reports a zero count for it.
func NewMetrics(registry gometrics.Registry) *Metrics {
	m := &Metrics{
		MetricsRegistry: registry,
		OperationMeters: make(map[OperationType]map[OperationStatus]gometrics.Meter),
		OperationTimers: make(map[OperationType]gometrics.Timer),
		LineCounters:    make(map[LineType]gometrics.Counter),
		EntryCounters:   make(map[AccountType]gometrics.Counter),
		VariableCounter: gometrics.GetOrRegisterCounter("variables", registry),
	}

	for _, operation := range OperationTypes() {
		m.OperationMeters[operation] = make(map[OperationStatus]gometrics.Meter)
		for _, status := range OperationStatuses() {
			m.OperationMeters[operation][status] = gometrics.GetOrRegisterMeter("operations."+string(operation)+"."+string(status), registry)
		}
		m.OperationTimers[operation] = gometrics.GetOrRegisterTimer("operation_time."+string(operation), registry)
	}
	for _, lineType := range LineTypes() {
		m.LineCounters[lineType] = gometrics.GetOrRegisterCounter("lines."+string(lineType), registry)
	}
	for _, accountType := range AccountTypes() {
		m.EntryCounters[accountType] = gometrics.GetOrRegisterCounter("entries."+string(accountType), registry)
	}
	return m
}

// RecordOperation implements a part of the MetricsEngine interface
func (me *Metrics) RecordOperation(labels OperationLabels) {
	if meters, ok := me.OperationMeters[labels.Operation]; ok {
		if meter, ok := meters[labels.Status]; ok {
			meter.Mark(1)
		}
	}
}

// RecordOperationTime implements a part of the MetricsEngine interface
func (me *Metrics) RecordOperationTime(labels OperationLabels, length time.Duration) {
	if timer, ok := me.OperationTimers[labels.Operation]; ok {
		timer.Update(length)
	}
}

// RecordLines implements a part of the MetricsEngine interface
func (me *Metrics) RecordLines(lineType LineType, count int) {
	if counter, ok := me.LineCounters[lineType]; ok {
		counter.Inc(int64(count))
	}
}

// RecordEntries implements a part of the MetricsEngine interface
func (me *Metrics) RecordEntries(accountType AccountType, count int) {
	if counter, ok := me.EntryCounters[accountType]; ok {
		counter.Inc(int64(count))
	}
}

// RecordVariables implements a part of the MetricsEngine interface
func (me *Metrics) RecordVariables(count int) {
	me.VariableCounter.Inc(int64(count))
}

// Write dumps every registered metric to w in go-metrics' text format.
func (me *Metrics) Write(w io.Writer) {
	gometrics.WriteOnce(me.MetricsRegistry, w)
}
