package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
)

func hasRule(errs []ValidationError, rule Rule) bool {
	for _, e := range errs {
		if e.Rule == rule {
			return true
		}
	}
	return false
}

func TestValidateAccount_Valid(t *testing.T) {
	parent := model.Account{GUID: "assets", Name: "Assets", Type: model.AccountTypeAsset}
	a := model.Account{GUID: "bank", Name: "Bank", Type: model.AccountTypeBank, CommodityGUID: "eur"}
	errs := ValidateAccount(a, &parent, &eurCommodity)
	assert.Empty(t, errs)
}

func TestValidateAccount_RootExemptFromParentAndCommodity(t *testing.T) {
	a := model.Account{GUID: "root", Name: "Root Account", Type: model.AccountTypeRoot}
	errs := ValidateAccount(a, nil, nil)
	assert.Empty(t, errs)
}

func TestValidateAccount_ParentTypeMismatch(t *testing.T) {
	// An ASSET parent does not allow a ROOT child.
	parent := model.Account{GUID: "assets", Name: "Assets", Type: model.AccountTypeAsset}
	a := model.Account{GUID: "bad", Name: "Nested Root", Type: model.AccountTypeRoot}
	errs := ValidateAccount(a, &parent, &eurCommodity)
	require.True(t, hasRule(errs, RuleParentType))

	// The message carries the allowed set and the parent type.
	for _, e := range errs {
		if e.Rule == RuleParentType {
			assert.Contains(t, e.Description, "ASSET account as parent")
			assert.Contains(t, e.Description, "BANK")
		}
	}
}

func TestValidateAccount_ExpenseUnderAssetRejected(t *testing.T) {
	parent := model.Account{GUID: "assets", Name: "Assets", Type: model.AccountTypeAsset}
	a := model.Account{GUID: "exp", Name: "Groceries", Type: model.AccountTypeExpense, CommodityGUID: "eur"}
	errs := ValidateAccount(a, &parent, &eurCommodity)
	assert.True(t, hasRule(errs, RuleParentType))
}

func TestValidateAccount_InvestmentWithCurrencyCommodity(t *testing.T) {
	parent := model.Account{GUID: "assets", Name: "Assets", Type: model.AccountTypeAsset}
	a := model.Account{GUID: "stk", Name: "Broker Shares", Type: model.AccountTypeStock, CommodityGUID: "eur"}
	errs := ValidateAccount(a, &parent, &eurCommodity)
	assert.True(t, hasRule(errs, RuleInvestmentCommodity))
}

func TestValidateAccount_InvestmentWithStockCommodity(t *testing.T) {
	parent := model.Account{GUID: "assets", Name: "Assets", Type: model.AccountTypeAsset}
	a := model.Account{GUID: "stk", Name: "Broker Shares", Type: model.AccountTypeStock, CommodityGUID: "tick"}
	errs := ValidateAccount(a, &parent, &tickCommodity)
	assert.Empty(t, errs)
}

func TestValidateAccount_NameRules(t *testing.T) {
	parent := model.Account{GUID: "root", Name: "Root Account", Type: model.AccountTypeRoot}

	short := model.Account{GUID: "a", Name: "Ab", Type: model.AccountTypeAsset, CommodityGUID: "eur"}
	assert.True(t, hasRule(ValidateAccount(short, &parent, &eurCommodity), RuleName))

	noLetters := model.Account{GUID: "a", Name: "1234", Type: model.AccountTypeAsset, CommodityGUID: "eur"}
	assert.True(t, hasRule(ValidateAccount(noLetters, &parent, &eurCommodity), RuleName))
}

func TestValidateAccount_UnknownType(t *testing.T) {
	parent := model.Account{GUID: "root", Name: "Root Account", Type: model.AccountTypeRoot}
	a := model.Account{GUID: "a", Name: "Weird", Type: model.AccountType("SAVINGS"), CommodityGUID: "eur"}
	assert.True(t, hasRule(ValidateAccount(a, &parent, &eurCommodity), RuleType))
}

func TestValidateAccount_MissingParent(t *testing.T) {
	a := model.Account{GUID: "a", Name: "Orphan", Type: model.AccountTypeAsset, CommodityGUID: "eur"}
	assert.True(t, hasRule(ValidateAccount(a, nil, &eurCommodity), RuleParent))
}

func TestValidateAccount_MissingCommodity(t *testing.T) {
	parent := model.Account{GUID: "root", Name: "Root Account", Type: model.AccountTypeRoot}
	a := model.Account{GUID: "a", Name: "Assets", Type: model.AccountTypeAsset}
	assert.True(t, hasRule(ValidateAccount(a, &parent, nil), RuleCommodity))
}

type mockChecker map[string]bool

func (m mockChecker) Exists(guid string) bool { return m[guid] }

func TestValidateTransaction_Balanced(t *testing.T) {
	tx := transfer("t1", date(2023, 1, 1), 100, 1)
	errs := ValidateTransaction(tx, mockChecker{"bank": true, "expenses": true})
	assert.Empty(t, errs)
}

func TestValidateTransaction_Unbalanced(t *testing.T) {
	tx := transfer("t1", date(2023, 1, 1), 100, 1)
	tx.Splits[1].ValueNum = -99
	errs := ValidateTransaction(tx, mockChecker{"bank": true, "expenses": true})
	assert.True(t, hasRule(errs, RuleBalanced))
}

func TestValidateTransaction_UnknownAccount(t *testing.T) {
	tx := transfer("t1", date(2023, 1, 1), 100, 1)
	errs := ValidateTransaction(tx, mockChecker{"bank": true})
	assert.True(t, hasRule(errs, RuleAccountRef))
}

func TestCheck_ValidBook(t *testing.T) {
	b := newTestBook(t, transfer("t1", date(2023, 1, 1), 100, 1))
	assert.Empty(t, b.Check())
}

func TestCheck_DefaultChartIsValid(t *testing.T) {
	chart := DefaultChart(eurCommodity)
	b, err := New([]model.Commodity{eurCommodity}, chart, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, b.Check())
}

func TestCheck_ReportsDanglingParent(t *testing.T) {
	accounts := append(testAccounts(), model.Account{
		GUID: "lost", Name: "Lost And Found", Type: model.AccountTypeAsset,
		CommodityGUID: "eur", ParentGUID: "missing",
	})
	b, err := New([]model.Commodity{eurCommodity}, accounts, nil, nil)
	require.NoError(t, err)
	assert.True(t, hasRule(b.Check(), RuleParent))
}
