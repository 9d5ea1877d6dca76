package category

// Default category names seeded for new accounts and as global defaults.
var (
	DefaultIncomeNames = []string{
		"Salary",
		"Freelance",
		"Investments",
		"Gifts",
		"Other Income",
	}

	DefaultExpenseNames = []string{
		"Housing",
		"Food",
		"Transportation",
		"Utilities",
		"Healthcare",
		"Entertainment",
		"Shopping",
		"Education",
		"Personal Care",
		"Debt Payments",
		"Savings",
		"Other Expenses",
	}
)
