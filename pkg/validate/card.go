package validate

import "github.com/ShiraazMoollatjie/goluhn"

// IsCardNumber reports whether s passes the Luhn check used for payment card
// numbers in withdrawal payout details.
func IsCardNumber(s string) bool {
	return goluhn.Validate(s) == nil
}
