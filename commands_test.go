package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prebid/adstxt/adstxt"
	"github.com/prebid/adstxt/errortypes"
	"github.com/prebid/adstxt/metrics"
	metricsConf "github.com/prebid/adstxt/metrics/config"
	"github.com/prebid/adstxt/util/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand(strings.NewReader(stdin), &out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseCommand(t *testing.T) {
	out, err := execute(t, "# ads.txt\nexample.com, 1, DIRECT # hi\ncontact=x\nnot valid\n", "parse")
	require.NoError(t, err)

	var manifest adstxt.Manifest
	require.NoError(t, json.Unmarshal([]byte(out), &manifest))
	assert.Equal(t, []adstxt.Entry{
		{AdvertisingSystemDomainName: "example.com", PublisherAccountID: "1", AccountType: adstxt.AccountTypeDirect, Comment: "hi"},
	}, manifest.Entries)
	assert.Equal(t, []string{"contact"}, manifest.Variables.Keys())
}

func TestParseCommandYAMLOutput(t *testing.T) {
	path := writeFile(t, "ads.txt", "example.com, 1, RESELLER\n")

	out, err := execute(t, "", "parse", "--output", "yaml", path)
	require.NoError(t, err)

	var manifest adstxt.Manifest
	require.NoError(t, yaml.Unmarshal([]byte(out), &manifest))
	require.Len(t, manifest.Entries, 1)
	assert.Equal(t, adstxt.AccountTypeReseller, manifest.Entries[0].AccountType)
}

func TestParseCommandThrow(t *testing.T) {
	_, err := execute(t, "example.com, 1, DIRECT\nnot valid\n", "parse", "--invalid-line-action", "throw")

	var parseErr *errortypes.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 2, parseErr.Line)
}

func TestInvalidConfiguration(t *testing.T) {
	_, err := execute(t, "", "parse", "--invalid-line-action", "explode")
	assert.Error(t, err)

	_, err = execute(t, "", "parse", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGenerateCommand(t *testing.T) {
	path := writeFile(t, "manifest.json", `{
		"entries": [{"advertisingSystemDomainName": "example.com", "publisherAccountId": "1", "accountType": "direct"}],
		"variables": {"contact": "x", "subdomain": ["a.example.com", "b.example.com"]}
	}`)

	out, err := execute(t, "", "generate", "--header", "top", "--footer", "bottom", path)
	require.NoError(t, err)

	assert.Equal(t, "# top\nexample.com, 1, DIRECT\ncontact=x\nsubdomain=a.example.com\nsubdomain=b.example.com\n# bottom\n", out)
}

func TestGenerateCommandYAML(t *testing.T) {
	manifest := "entries:\n  - advertisingSystemDomainName: example.com\n    publisherAccountId: \"1\"\n    accountType: RESELLER\n"

	out, err := execute(t, "", "generate", writeFile(t, "manifest.yml", manifest))
	require.NoError(t, err)
	assert.Equal(t, "example.com, 1, RESELLER\n", out)

	out, err = execute(t, manifest, "generate", "--input-format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "example.com, 1, RESELLER\n", out)
}

func TestGenerateCommandInvalidManifest(t *testing.T) {
	tests := []struct {
		description string
		stdin       string
		args        []string
	}{
		{
			description: "invalid account type",
			stdin:       `{"entries": [{"advertisingSystemDomainName": "example.com", "publisherAccountId": "1", "accountType": "BOGUS"}]}`,
			args:        []string{"generate"},
		},
		{
			description: "variable of the wrong shape",
			stdin:       `{"variables": {"contact": 1}}`,
			args:        []string{"generate"},
		},
		{
			description: "unknown input format",
			stdin:       `{}`,
			args:        []string{"generate", "--input-format", "toml"},
		},
	}

	for _, test := range tests {
		out, err := execute(t, test.stdin, test.args...)
		assert.Error(t, err, test.description)
		assert.Empty(t, out, test.description)
		assert.Equal(t, metrics.OperationStatusBadInput, operationStatus(err), test.description)
	}
}

func TestFmtCommand(t *testing.T) {
	out, err := execute(t, "EXAMPLE.com,1,direct # hi\r\n\n# comment\nbad line\nb.com, 2, reseller, cert\n", "fmt", "--header", "formatted")
	require.NoError(t, err)
	assert.Equal(t, "# formatted\nexample.com, 1, DIRECT # hi\nb.com, 2, RESELLER, cert\n", out)
}

func TestLintCommand(t *testing.T) {
	in := "# c\nexample.com, 1, DIRECT\nbad line\n"

	out, err := execute(t, in, "lint")
	assert.NoError(t, err, "filtered lines are warnings")
	assert.Equal(t, "empty\t1\ncomment\t1\nvariable\t0\nentry\t1\ninvalid\t1\n", out)

	out, err = execute(t, in, "lint", "--invalid-line-action", "throw")
	var aggregate errortypes.AggregateErrors
	require.True(t, errors.As(err, &aggregate))
	require.Len(t, aggregate.Errors, 1)
	assert.Equal(t, 3, errortypes.LineNumber(aggregate.Errors[0]))
	assert.Contains(t, err.Error(), "(1 error on 1 line)")
	assert.Equal(t, "empty\t1\ncomment\t1\nvariable\t0\nentry\t1\ninvalid\t1\n", out)

	out, err = execute(t, "example.com, 1, DIRECT", "lint")
	assert.NoError(t, err)
	assert.Contains(t, out, "invalid\t0\n")
}

func TestMetricsTextfile(t *testing.T) {
	textfile := filepath.Join(t.TempDir(), "adstxt.prom")
	configFile := writeFile(t, "adstxt.yaml", "metrics:\n  type: prometheus\n  namespace: adstxt\n  textfile: "+textfile+"\n")

	_, err := execute(t, "example.com, 1, DIRECT\nb.com, 2, RESELLER\nbad\n", "parse", "--config", configFile)
	require.NoError(t, err)

	out, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(out), `adstxt_operations{operation="parse",status="ok"} 1`)
	assert.Contains(t, string(out), `adstxt_lines{line_type="entry"} 2`)
	assert.Contains(t, string(out), `adstxt_lines{line_type="invalid"} 1`)
	assert.Contains(t, string(out), `adstxt_entries{account_type="RESELLER"} 1`)
}

func TestOperationStatus(t *testing.T) {
	tests := []struct {
		description string
		err         error
		expected    metrics.OperationStatus
	}{
		{description: "no error", err: nil, expected: metrics.OperationStatusOK},
		{description: "parse error", err: &errortypes.ParseError{}, expected: metrics.OperationStatusBadInput},
		{description: "validation error", err: &errortypes.ValidationError{}, expected: metrics.OperationStatusBadInput},
		{description: "aggregate", err: errortypes.NewAggregateErrors("lint", []error{errors.New("x")}), expected: metrics.OperationStatusBadInput},
		{description: "io error", err: os.ErrNotExist, expected: metrics.OperationStatusErr},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, operationStatus(test.err), test.description)
	}
}

func TestRecordManifest(t *testing.T) {
	engine := &metrics.MetricsEngineMock{}
	engine.On("RecordEntries", metrics.AccountTypeDirect, 2).Once()
	engine.On("RecordEntries", metrics.AccountTypeReseller, 1).Once()
	engine.On("RecordVariables", 1).Once()

	var manifest adstxt.Manifest
	manifest.Entries = []adstxt.Entry{
		{AdvertisingSystemDomainName: "a.com", PublisherAccountID: "1", AccountType: adstxt.AccountTypeDirect},
		{AdvertisingSystemDomainName: "b.com", PublisherAccountID: "2", AccountType: adstxt.AccountTypeReseller},
		{AdvertisingSystemDomainName: "c.com", PublisherAccountID: "3", AccountType: adstxt.AccountTypeDirect},
	}
	manifest.Variables.Add("contact", "x")

	recordManifestTo(engine, manifest)

	engine.AssertExpectations(t)
}

func TestRunRecordsOperationTime(t *testing.T) {
	clock := timeutil.NewMockClockAt(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	engine := &metrics.MetricsEngineMock{}
	labels := metrics.OperationLabels{Operation: metrics.OperationLint, Status: metrics.OperationStatusBadInput}
	engine.On("RecordOperation", labels).Once()
	engine.On("RecordOperationTime", labels, 250*time.Millisecond).Once()

	a := &app{
		clock:         clock,
		metricsEngine: &metricsConf.DetailedMetricsEngine{MetricsEngine: engine},
	}
	err := a.run(metrics.OperationLint, func() error {
		clock.Advance(250 * time.Millisecond)
		return &errortypes.ParseError{Message: "bad"}
	})

	assert.Error(t, err)
	engine.AssertExpectations(t)
}
