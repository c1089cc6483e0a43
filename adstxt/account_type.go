package adstxt

import (
	"fmt"
	"strings"

	"github.com/prebid/adstxt/errortypes"
)

// AccountType describes the relationship between the publisher and the account.
type AccountType string

const (
	// AccountTypeDirect means the publisher directly controls the account.
	AccountTypeDirect AccountType = "DIRECT"
	// AccountTypeReseller means the publisher authorized an intermediary to resell its inventory.
	AccountTypeReseller AccountType = "RESELLER"
)

var accountTypes = map[AccountType]struct{}{
	AccountTypeDirect:   {},
	AccountTypeReseller: {},
}

// IsValidAccountType reports whether s names an account type, ignoring case.
func IsValidAccountType(s string) bool {
	_, ok := accountTypes[AccountType(strings.ToUpper(s))]
	return ok
}

// ParseAccountType converts s to its canonical AccountType, ignoring case. Unrecognized input is
// an error rather than a fallback to RESELLER.
func ParseAccountType(s string) (AccountType, error) {
	accountType := AccountType(strings.ToUpper(s))
	if _, ok := accountTypes[accountType]; !ok {
		return "", &errortypes.ValidationError{
			Message: fmt.Sprintf("Invalid account type: %s", s),
		}
	}
	return accountType, nil
}
