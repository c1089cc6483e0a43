package adstxt

import "github.com/prebid/adstxt/util/domainutil"

// Validators holds the syntax predicates used by the parser and generator. A nil field falls
// back to the default: domainutil.IsDomainName and IsValidAccountType.
//
// A custom IsAccountType may only narrow the default set. Account types outside DIRECT and
// RESELLER still fail normalization.
type Validators struct {
	IsDomainName  func(name string) bool
	IsAccountType func(accountType string) bool
}

func (v Validators) isDomainName(name string) bool {
	if v.IsDomainName == nil {
		return domainutil.IsDomainName(name)
	}
	return v.IsDomainName(name)
}

func (v Validators) isAccountType(accountType string) bool {
	if v.IsAccountType == nil {
		return IsValidAccountType(accountType)
	}
	return v.IsAccountType(accountType)
}
