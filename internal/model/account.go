// Package model defines the core domain models used throughout the application.
package model

import "fmt"

// AccountNature classifies an account by how increases to it are recorded.
type AccountNature string

const (
	// NatureAsset represents asset accounts (codes starting with 1).
	NatureAsset AccountNature = "asset"
	// NatureLiability represents liability accounts (codes starting with 2).
	NatureLiability AccountNature = "liability"
	// NatureEquity represents equity accounts (codes starting with 3).
	NatureEquity AccountNature = "equity"
	// NatureIncome represents income accounts (codes starting with 4).
	NatureIncome AccountNature = "income"
	// NatureExpense represents expense accounts (codes starting with 5).
	NatureExpense AccountNature = "expense"
)

// AccountCode identifies an account in the chart of accounts. The first
// character encodes the account's nature: 1=asset, 2=liability, 3=equity,
// 4=income, 5=expense.
type AccountCode string

// Nature returns the accounting nature encoded in the code's first digit.
func (c AccountCode) Nature() (AccountNature, error) {
	if c == "" {
		return "", fmt.Errorf("empty account code")
	}

	switch c[0] {
	case '1':
		return NatureAsset, nil
	case '2':
		return NatureLiability, nil
	case '3':
		return NatureEquity, nil
	case '4':
		return NatureIncome, nil
	case '5':
		return NatureExpense, nil
	default:
		return "", fmt.Errorf("account code %q has no recognized nature digit", string(c))
	}
}

// IsDebtorNature reports whether increases to the account are recorded as
// debits (assets and expenses).
func (c AccountCode) IsDebtorNature() bool {
	return len(c) > 0 && (c[0] == '1' || c[0] == '5')
}

// Validate ensures the code is non-empty and carries a valid nature digit.
func (c AccountCode) Validate() error {
	_, err := c.Nature()
	return err
}
