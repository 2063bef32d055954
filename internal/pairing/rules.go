// Package pairing assigns debit and credit roles to the top two classifier
// candidates using double-entry bookkeeping rules.
package pairing

import "github.com/asentar-dev/asentar/internal/model"

// rule is one entry in the priority-ordered double-entry table. matches
// reports whether the pair satisfies the rule with debit and credit in the
// given roles; every rule is also tried with the roles swapped, so the
// assignment follows account nature, not candidate order.
type rule struct {
	matches func(debit, credit model.AccountCode) bool
	name    string
}

// rules is evaluated in order; the first match wins. The table mirrors the
// "debtor nature increases, creditor nature decreases" reading of a journal
// entry.
var rules = []rule{
	{
		// Wage/expense payment: the expense is debited, the asset paying
		// for it is credited.
		name: "expense vs asset",
		matches: func(debit, credit model.AccountCode) bool {
			return first(debit) == '5' && first(credit) == '1'
		},
	},
	{
		// Capital contribution or sale: the asset received is debited,
		// equity or income is credited.
		name: "asset vs equity/income",
		matches: func(debit, credit model.AccountCode) bool {
			return first(debit) == '1' && (first(credit) == '3' || first(credit) == '4')
		},
	},
	{
		// Credit purchase or payment to supplier: the debtor-nature account
		// is debited, the liability is credited.
		name: "debtor vs liability",
		matches: func(debit, credit model.AccountCode) bool {
			return debit.IsDebtorNature() && first(credit) == '2'
		},
	},
}

// Pair selects the debit and credit accounts from ranked predictions.
// It returns false when fewer than two candidates are available. With two or
// more, the top two are run through the rule table; if no rule matches in
// either role order (for example both candidates share a nature), the
// highest-confidence candidate is debited unconditionally.
func Pair(predictions model.Predictions) (*model.Entry, bool) {
	if len(predictions) < 2 {
		return nil, false
	}

	c1 := predictions[0].Code
	c2 := predictions[1].Code

	for _, r := range rules {
		if r.matches(c1, c2) {
			return &model.Entry{Debit: c1, Credit: c2}, true
		}
		if r.matches(c2, c1) {
			return &model.Entry{Debit: c2, Credit: c1}, true
		}
	}

	return &model.Entry{Debit: c1, Credit: c2}, true
}

func first(c model.AccountCode) byte {
	if len(c) == 0 {
		return 0
	}
	return c[0]
}
