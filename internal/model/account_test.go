package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountType_IsValid(t *testing.T) {
	for _, typ := range AccountTypes {
		assert.True(t, typ.IsValid(), "%s should be valid", typ)
	}
	assert.False(t, AccountType("SAVINGS").IsValid())
	assert.False(t, AccountType("").IsValid())
}

func TestAccountType_IsInvestment(t *testing.T) {
	assert.True(t, AccountTypeStock.IsInvestment())
	assert.True(t, AccountTypeMutual.IsInvestment())
	assert.False(t, AccountTypeBank.IsInvestment())
	assert.False(t, AccountTypeRoot.IsInvestment())
}

func TestAllowedChildren(t *testing.T) {
	assert.ElementsMatch(t, []AccountType{
		AccountTypeAsset, AccountTypeBank, AccountTypeCash,
		AccountTypeEquity, AccountTypeLiability,
		AccountTypeIncome, AccountTypeExpense,
	}, AllowedChildren(AccountTypeRoot))

	assert.Contains(t, AllowedChildren(AccountTypeAsset), AccountTypeStock)
	assert.NotContains(t, AllowedChildren(AccountTypeAsset), AccountTypeExpense)

	// Leaf investment types accept no children at all.
	assert.Empty(t, AllowedChildren(AccountTypeStock))
	assert.Empty(t, AllowedChildren(AccountTypeMutual))

	assert.Equal(t, []AccountType{AccountTypeExpense}, AllowedChildren(AccountTypeExpense))
}

func TestAccount_IsRoot(t *testing.T) {
	assert.True(t, Account{Type: AccountTypeRoot}.IsRoot())
	assert.False(t, Account{Type: AccountTypeAsset}.IsRoot())
}
