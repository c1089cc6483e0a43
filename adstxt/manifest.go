// Package adstxt parses and generates ads.txt files: the list of sellers authorized to sell a
// publisher's inventory, plus free-form KEY=VALUE variables.
package adstxt

// Manifest is the structured form of an ads.txt file.
type Manifest struct {
	// Entries in file order.
	Entries []Entry `json:"entries" yaml:"entries"`
	// Variables keyed by name, in first-seen order.
	Variables Variables `json:"variables" yaml:"variables"`
}

// Entry is a single authorized seller declaration.
type Entry struct {
	// AdvertisingSystemDomainName is the domain of the advertising system, lower-cased.
	AdvertisingSystemDomainName string `json:"advertisingSystemDomainName" yaml:"advertisingSystemDomainName"`
	// PublisherAccountID identifies the publisher within the advertising system.
	PublisherAccountID string `json:"publisherAccountId" yaml:"publisherAccountId"`
	// AccountType is DIRECT or RESELLER.
	AccountType AccountType `json:"accountType" yaml:"accountType"`
	// CertificationAuthorityID is the optional trust-registry ID of the advertising system.
	CertificationAuthorityID string `json:"certificationAuthorityId,omitempty" yaml:"certificationAuthorityId,omitempty"`
	// Comment is the free text after '#' on the entry's line.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}
