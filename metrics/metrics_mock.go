package metrics

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MetricsEngineMock is mock for the MetricsEngine interface
type MetricsEngineMock struct {
	mock.Mock
}

// RecordOperation mock
func (me *MetricsEngineMock) RecordOperation(labels OperationLabels) {
	me.Called(labels)
}

// RecordOperationTime mock
func (me *MetricsEngineMock) RecordOperationTime(labels OperationLabels, length time.Duration) {
	me.Called(labels, length)
}

// RecordLines mock
func (me *MetricsEngineMock) RecordLines(lineType LineType, count int) {
	me.Called(lineType, count)
}

// RecordEntries mock
func (me *MetricsEngineMock) RecordEntries(accountType AccountType, count int) {
	me.Called(accountType, count)
}

// RecordVariables mock
func (me *MetricsEngineMock) RecordVariables(count int) {
	me.Called(count)
}
