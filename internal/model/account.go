package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeRoot      AccountType = "ROOT"
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeBank      AccountType = "BANK"
	AccountTypeCash      AccountType = "CASH"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeIncome    AccountType = "INCOME"
	AccountTypeExpense   AccountType = "EXPENSE"
	AccountTypeMutual    AccountType = "MUTUAL"
	AccountTypeStock     AccountType = "STOCK"
)

// AccountTypes lists every valid account type.
var AccountTypes = []AccountType{
	AccountTypeRoot,
	AccountTypeAsset,
	AccountTypeBank,
	AccountTypeCash,
	AccountTypeEquity,
	AccountTypeLiability,
	AccountTypeIncome,
	AccountTypeExpense,
	AccountTypeMutual,
	AccountTypeStock,
}

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsInvestment reports whether accounts of this type hold a traded
// asset rather than a currency balance.
func (t AccountType) IsInvestment() bool {
	return t == AccountTypeStock || t == AccountTypeMutual
}

// allowedChildren is the static policy table constraining which types
// may appear under a given parent type.
var allowedChildren = map[AccountType][]AccountType{
	AccountTypeRoot: {
		AccountTypeAsset, AccountTypeBank, AccountTypeCash,
		AccountTypeEquity, AccountTypeLiability,
		AccountTypeIncome, AccountTypeExpense,
	},
	AccountTypeAsset: {
		AccountTypeAsset, AccountTypeBank, AccountTypeCash,
		AccountTypeStock, AccountTypeMutual,
	},
	AccountTypeBank:      {AccountTypeBank, AccountTypeCash},
	AccountTypeCash:      {AccountTypeCash},
	AccountTypeEquity:    {AccountTypeEquity},
	AccountTypeLiability: {AccountTypeLiability},
	AccountTypeIncome:    {AccountTypeIncome},
	AccountTypeExpense:   {AccountTypeExpense},
	AccountTypeMutual:    {},
	AccountTypeStock:     {},
}

// AllowedChildren returns the account types permitted under a parent
// of the given type.
func AllowedChildren(parent AccountType) []AccountType {
	return allowedChildren[parent]
}

// Account is one node in the account tree. Parent and commodity are
// GUID references resolved through the owning book, never object
// links.
type Account struct {
	GUID          string
	Name          string
	Type          AccountType
	CommodityGUID string
	ParentGUID    string // empty for the ROOT account
	Code          string
	Description   string
	Path          string // materialized path, e.g. "Assets:Bank:Checking"
	Hidden        bool
	Placeholder   bool
}

// IsRoot reports whether the account is the synthetic tree root.
func (a Account) IsRoot() bool {
	return a.Type == AccountTypeRoot
}
