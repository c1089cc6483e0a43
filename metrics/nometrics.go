package metrics

import "time"

// NilMetricsEngine implements MetricsEngine and records nothing.
// The tool uses it when metrics.type is "none".
type NilMetricsEngine struct{}

// RecordOperation as a noop
func (me *NilMetricsEngine) RecordOperation(labels OperationLabels) {}

// RecordOperationTime as a noop
func (me *NilMetricsEngine) RecordOperationTime(labels OperationLabels, length time.Duration) {}

// RecordLines as a noop
func (me *NilMetricsEngine) RecordLines(lineType LineType, count int) {}

// RecordEntries as a noop
func (me *NilMetricsEngine) RecordEntries(accountType AccountType, count int) {}

// RecordVariables as a noop
func (me *NilMetricsEngine) RecordVariables(count int) {}
