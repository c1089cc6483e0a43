package adstxt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		description string
		manifest    func() Manifest
		header      string
		footer      string
	}{
		{
			description: "empty manifest",
			manifest:    func() Manifest { return Manifest{} },
		},
		{
			description: "entries and variables",
			manifest:    testManifest,
		},
		{
			description: "header and footer are comments",
			manifest:    testManifest,
			header:      "generated file\ndo not edit",
			footer:      "end",
		},
		{
			description: "comments containing hashes",
			manifest: func() Manifest {
				return Manifest{Entries: []Entry{
					{AdvertisingSystemDomainName: "example.com", PublisherAccountID: "1", AccountType: AccountTypeReseller, Comment: "a # b"},
					{AdvertisingSystemDomainName: "sub.example.org", PublisherAccountID: "x-2", AccountType: AccountTypeDirect, CertificationAuthorityID: "c"},
				}}
			},
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			expected := test.manifest()

			text, err := GenerateAdsTxt(expected, test.header, test.footer)
			require.NoError(t, err)

			actual, err := ParseAdsTxt(text, ParseOptions{InvalidLineAction: InvalidLineActionThrow})
			require.NoError(t, err)

			if diff := cmp.Diff(expected, actual); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
