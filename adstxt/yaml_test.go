package adstxt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestManifestUnmarshalYAML(t *testing.T) {
	in := `
entries:
  - advertisingSystemDomainName: example.com
    publisherAccountId: "123"
    accountType: DIRECT
    comment: hello
variables:
  subdomain:
    - b.example.com
    - a.example.com
  contact: ads@example.com
  version: 2
  ratio: 1.50
  enabled: yes
  ids: [007, 1e3]
`

	var m Manifest
	require.NoError(t, yaml.Unmarshal([]byte(in), &m))

	assert.Equal(t, []Entry{
		{AdvertisingSystemDomainName: "example.com", PublisherAccountID: "123", AccountType: AccountTypeDirect, Comment: "hello"},
	}, m.Entries)
	assert.Equal(t, []string{"subdomain", "contact", "version", "ratio", "enabled", "ids"}, m.Variables.Keys())

	subdomain, _ := m.Variables.Get("subdomain")
	assert.Equal(t, Multi("b.example.com", "a.example.com"), subdomain)
	version, _ := m.Variables.Get("version")
	assert.Equal(t, Single("2"), version)
	ratio, _ := m.Variables.Get("ratio")
	assert.Equal(t, Single("1.50"), ratio)
	enabled, _ := m.Variables.Get("enabled")
	assert.Equal(t, Single("yes"), enabled)
	ids, _ := m.Variables.Get("ids")
	assert.Equal(t, Multi("007", "1e3"), ids)
}

func TestManifestYAMLRoundTrip(t *testing.T) {
	expected := testManifest()

	out, err := yaml.Marshal(expected)
	require.NoError(t, err)

	var actual Manifest
	require.NoError(t, yaml.Unmarshal(out, &actual))

	assert.Equal(t, expected.Entries, actual.Entries)
	assert.True(t, expected.Variables.Equal(actual.Variables))
}

func TestVariablesUnmarshalYAMLInvalid(t *testing.T) {
	tests := []struct {
		description string
		in          string
	}{
		{description: "nested mapping", in: "variables:\n  a:\n    b: c\n"},
		{description: "null value", in: "variables:\n  a:\n"},
		{description: "sequence of mappings", in: "variables:\n  a:\n    - b: c\n"},
		{description: "null in sequence", in: "variables:\n  a:\n    - b\n    -\n"},
		{description: "nested sequence", in: "variables:\n  a:\n    - [b, c]\n"},
	}

	for _, test := range tests {
		var m Manifest
		assert.Error(t, yaml.Unmarshal([]byte(test.in), &m), test.description)
	}
}
