package book

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Rule identifies which invariant a ValidationError violated.
type Rule int

const (
	// RuleName: account names contain letters or dots and are 4-2048
	// runes long.
	RuleName Rule = iota + 1
	// RuleType: the account type is one of the known types.
	RuleType
	// RuleParent: non-ROOT accounts reference an existing parent.
	RuleParent
	// RuleParentType: the account type is allowed under the parent's
	// type per the static policy table.
	RuleParentType
	// RuleCommodity: non-ROOT accounts reference an existing commodity.
	RuleCommodity
	// RuleInvestmentCommodity: investment accounts must not use a
	// currency as their commodity.
	RuleInvestmentCommodity
	// RuleAccountRef: every split references an existing account.
	RuleAccountRef
	// RuleBalanced: a transaction's split values sum to zero.
	RuleBalanced
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Rule        Rule
	GUID        string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("rule %d [%s]: %s", e.Rule, e.GUID, e.Description)
}

var namePattern = regexp.MustCompile(`[a-zA-Z.]+`)

const (
	nameMinLen = 4
	nameMaxLen = 2048
)

// ValidateAccount checks a candidate account against its resolved
// parent and commodity. Parent and commodity are nil when the
// reference is absent or dangling; ROOT accounts are exempt from
// needing either.
func ValidateAccount(a model.Account, parent *model.Account, commodity *model.Commodity) []ValidationError {
	var errs []ValidationError

	if n := utf8.RuneCountInString(a.Name); !namePattern.MatchString(a.Name) || n < nameMinLen || n > nameMaxLen {
		errs = append(errs, ValidationError{
			Rule:        RuleName,
			GUID:        a.GUID,
			Description: fmt.Sprintf("name %q must contain letters and be %d-%d characters", a.Name, nameMinLen, nameMaxLen),
		})
	}

	if !a.Type.IsValid() {
		errs = append(errs, ValidationError{
			Rule:        RuleType,
			GUID:        a.GUID,
			Description: fmt.Sprintf("unknown account type %q", a.Type),
		})
	}

	if !a.IsRoot() && parent == nil {
		errs = append(errs, ValidationError{
			Rule:        RuleParent,
			GUID:        a.GUID,
			Description: "parent is required",
		})
	}

	if parent != nil && !typeAllowedUnder(a.Type, parent.Type) {
		errs = append(errs, ValidationError{
			Rule:        RuleParentType,
			GUID:        a.GUID,
			Description: fmt.Sprintf("only %v types can be selected with %s account as parent", model.AllowedChildren(parent.Type), parent.Type),
		})
	}

	if !a.IsRoot() && commodity == nil {
		errs = append(errs, ValidationError{
			Rule:        RuleCommodity,
			GUID:        a.GUID,
			Description: "commodity is required",
		})
	}

	if a.Type.IsInvestment() && commodity != nil && commodity.IsCurrency() {
		errs = append(errs, ValidationError{
			Rule:        RuleInvestmentCommodity,
			GUID:        a.GUID,
			Description: "investment accounts cannot have a currency as their commodity",
		})
	}

	return errs
}

func typeAllowedUnder(child, parent model.AccountType) bool {
	for _, t := range model.AllowedChildren(parent) {
		if child == t {
			return true
		}
	}
	return false
}

// AccountChecker tests whether an account GUID exists in a book.
type AccountChecker interface {
	Exists(guid string) bool
}

// ValidateTransaction enforces the double-entry invariants on a
// single transaction: split values balance to zero and every split
// references a known account.
func ValidateTransaction(tx model.Transaction, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	sum := decimal.Zero
	for _, s := range tx.Splits {
		sum = sum.Add(s.Value())
		if !accounts.Exists(s.AccountGUID) {
			errs = append(errs, ValidationError{
				Rule:        RuleAccountRef,
				GUID:        tx.GUID,
				Description: fmt.Sprintf("split %s references unknown account %s", s.GUID, s.AccountGUID),
			})
		}
	}
	if !sum.IsZero() {
		errs = append(errs, ValidationError{
			Rule:        RuleBalanced,
			GUID:        tx.GUID,
			Description: fmt.Sprintf("split values sum to %s, not zero", sum),
		})
	}

	return errs
}

// Check validates every account and transaction in the book.
func (b *Book) Check() []ValidationError {
	var errs []ValidationError

	for _, a := range b.Accounts() {
		var parent *model.Account
		if p, ok := b.accounts[a.ParentGUID]; ok {
			parent = &p
		}
		var commodity *model.Commodity
		if c, ok := b.commodities[a.CommodityGUID]; ok {
			commodity = &c
		}
		errs = append(errs, ValidateAccount(a, parent, commodity)...)
	}

	for _, tx := range b.Transactions() {
		errs = append(errs, ValidateTransaction(tx, b)...)
	}

	return errs
}
