package metrics

import (
	"time"
)

// OperationLabels defines the labels attached to operation metrics.
type OperationLabels struct {
	Operation OperationType
	Status    OperationStatus
}

// OperationType names a top level command of the tool.
type OperationType string

const (
	OperationParse    OperationType = "parse"
	OperationGenerate OperationType = "generate"
	OperationFormat   OperationType = "fmt"
	OperationLint     OperationType = "lint"
)

// OperationTypes returns all possible values for OperationType
func OperationTypes() []OperationType {
	return []OperationType{
		OperationParse,
		OperationGenerate,
		OperationFormat,
		OperationLint,
	}
}

// OperationStatus is the outcome of an operation.
type OperationStatus string

const (
	OperationStatusOK OperationStatus = "ok"
	// OperationStatusBadInput is used when the input failed to parse or validate.
	OperationStatusBadInput OperationStatus = "badinput"
	OperationStatusErr      OperationStatus = "err"
)

// OperationStatuses returns all possible values for OperationStatus
func OperationStatuses() []OperationStatus {
	return []OperationStatus{
		OperationStatusOK,
		OperationStatusBadInput,
		OperationStatusErr,
	}
}

// LineType is the category of an ads.txt line, as counted by RecordLines.
type LineType string

const (
	LineTypeEmpty    LineType = "empty"
	LineTypeComment  LineType = "comment"
	LineTypeVariable LineType = "variable"
	LineTypeEntry    LineType = "entry"
	LineTypeInvalid  LineType = "invalid"
)

// LineTypes returns all possible values for LineType
func LineTypes() []LineType {
	return []LineType{
		LineTypeEmpty,
		LineTypeComment,
		LineTypeVariable,
		LineTypeEntry,
		LineTypeInvalid,
	}
}

// AccountType mirrors the two ads.txt account types as a metric label.
type AccountType string

const (
	AccountTypeDirect   AccountType = "DIRECT"
	AccountTypeReseller AccountType = "RESELLER"
)

// AccountTypes returns all possible values for AccountType
func AccountTypes() []AccountType {
	return []AccountType{
		AccountTypeDirect,
		AccountTypeReseller,
	}
}

// MetricsEngine is a generic interface to record metrics into the desired backend
type MetricsEngine interface {
	RecordOperation(labels OperationLabels)
	RecordOperationTime(labels OperationLabels, length time.Duration)
	RecordLines(lineType LineType, count int)
	RecordEntries(accountType AccountType, count int)
	RecordVariables(count int)
}
