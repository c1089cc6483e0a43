package domainutil

import (
	"strings"

	validator "github.com/asaskevich/govalidator"
	"golang.org/x/net/idna"
)

const (
	maxDomainLength = 253
	maxLabelLength  = 63
)

// IsDomainName reports whether name is a syntactically valid, fully qualified host name.
//
// Internationalized names are mapped to their ASCII (punycode) form before the label checks, so
// "bücher.example" is accepted. IP literals and single-label names are rejected.
func IsDomainName(name string) bool {
	if name == "" || len(name) > maxDomainLength {
		return false
	}

	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return false
	}
	ascii = strings.TrimSuffix(ascii, ".")
	if len(ascii) > maxDomainLength || !validator.IsDNSName(ascii) {
		return false
	}

	labels := strings.Split(ascii, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !isLabel(label) {
			return false
		}
	}
	return true
}

func isLabel(label string) bool {
	if len(label) == 0 || len(label) > maxLabelLength {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-') {
			return false
		}
	}
	return true
}
