package book

import (
	"github.com/tally-dev/tally/internal/guid"
	"github.com/tally-dev/tally/internal/model"
)

// DefaultChart returns a starter account tree denominated in the
// given currency: the ROOT account plus the usual top-level
// categories and a few everyday sub-accounts.
func DefaultChart(currency model.Commodity) []model.Account {
	root := model.Account{GUID: guid.New(), Name: "Root Account", Type: model.AccountTypeRoot}

	child := func(parent model.Account, name string, t model.AccountType, placeholder bool) model.Account {
		return model.Account{
			GUID:          guid.New(),
			Name:          name,
			Type:          t,
			CommodityGUID: currency.GUID,
			ParentGUID:    parent.GUID,
			Placeholder:   placeholder,
		}
	}

	assets := child(root, "Assets", model.AccountTypeAsset, true)
	equity := child(root, "Equity", model.AccountTypeEquity, true)
	liabilities := child(root, "Liabilities", model.AccountTypeLiability, true)
	income := child(root, "Income", model.AccountTypeIncome, true)
	expenses := child(root, "Expenses", model.AccountTypeExpense, true)

	return []model.Account{
		root,
		assets,
		child(assets, "Bank", model.AccountTypeBank, false),
		child(assets, "Cash", model.AccountTypeCash, false),
		equity,
		child(equity, "Opening Balances", model.AccountTypeEquity, false),
		liabilities,
		income,
		child(income, "Salary", model.AccountTypeIncome, false),
		expenses,
		child(expenses, "Groceries", model.AccountTypeExpense, false),
		child(expenses, "Utilities", model.AccountTypeExpense, false),
	}
}
