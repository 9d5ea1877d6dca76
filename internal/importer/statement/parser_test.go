package statement_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"budgetscope/internal/importer/statement"
	"budgetscope/internal/transaction"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_SignedAmounts(t *testing.T) {
	csv := `Date,Description,Amount
2026-01-30,Electric Bill,-58.74
2026-01-09,Monthly Salary,8608.52
`

	p := statement.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, date(2026, 1, 30), txs[0].Date)
	assert.Equal(t, "Electric Bill", txs[0].Description)
	assert.Equal(t, int64(5874), txs[0].Amount)
	assert.Equal(t, transaction.TypeExpense, txs[0].Type)

	assert.Equal(t, date(2026, 1, 9), txs[1].Date)
	assert.Equal(t, "Monthly Salary", txs[1].Description)
	assert.Equal(t, int64(860852), txs[1].Amount)
	assert.Equal(t, transaction.TypeIncome, txs[1].Type)
}

func TestParser_DebitCredit(t *testing.T) {
	csv := `Date,Description,Debit,Credit
16/12/2025,Corner Grocery,64.00,
31/12/2025,Refund Webstore,,25.00
`

	p := statement.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, date(2025, 12, 16), txs[0].Date)
	assert.Equal(t, int64(6400), txs[0].Amount)
	assert.Equal(t, transaction.TypeExpense, txs[0].Type)

	assert.Equal(t, date(2025, 12, 31), txs[1].Date)
	assert.Equal(t, int64(2500), txs[1].Amount)
	assert.Equal(t, transaction.TypeIncome, txs[1].Type)
}

func TestParser_SemicolonDelimiter(t *testing.T) {
	csv := `Account;0000 - EUR - Checking
Statement period;01-01-2026 to 31-01-2026

Date;Description;Amount
30-01-2026;Streaming Service;-10,99
`

	p := statement.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, date(2026, 1, 30), txs[0].Date)
	assert.Equal(t, int64(1099), txs[0].Amount)
	assert.Equal(t, transaction.TypeExpense, txs[0].Type)
}

func TestParser_EuropeanAmounts(t *testing.T) {
	csv := `Date;Description;Amount
30-01-2026;Big Transfer;-1.234.567,89
`

	p := statement.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, int64(123456789), txs[0].Amount)
}

func TestParser_ThousandsCommas(t *testing.T) {
	csv := `Date,Description,Amount
2026-01-09,Bonus,"1,234.56"
`

	p := statement.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, int64(123456), txs[0].Amount)
	assert.Equal(t, transaction.TypeIncome, txs[0].Type)
}

func TestParser_Windows1252Encoding(t *testing.T) {
	utf8CSV := "Date,Description,Amount\n2026-01-30,CAFÉ CENTRAL,-10.00\n"

	encoder := charmap.Windows1252.NewEncoder()
	raw, err := encoder.Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	p := statement.NewParser()
	txs, err := p.Parse(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, "CAFÉ CENTRAL", txs[0].Description)
}

func TestParser_DifferentColumnOrder(t *testing.T) {
	csv := `Random,Metadata
Amount,Description,Date,Ignored
-10.00,TEST_ORDER,2026-01-30,XXX
`

	p := statement.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, "TEST_ORDER", txs[0].Description)
	assert.Equal(t, int64(1000), txs[0].Amount)
}

func TestParser_CaseInsensitiveHeaders(t *testing.T) {
	csv := `date,description,amount
2026-01-30,lowercase header,-5.00
`

	p := statement.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, int64(500), txs[0].Amount)
}

func TestParser_EmptyFile(t *testing.T) {
	p := statement.NewParser()
	_, err := p.Parse(strings.NewReader(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no matching statement format")
}

func TestParser_HeaderOnly(t *testing.T) {
	csv := `Date,Description,Amount`

	p := statement.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestParser_MissingDescription(t *testing.T) {
	csv := `Date,Description,Amount
2026-01-30,,-10.00
`

	p := statement.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "description")
}

func TestParser_SkipsFooterRows(t *testing.T) {
	csv := `Date,Description,Amount
2026-01-30,TEST,-10.00
Totals,,,
`

	p := statement.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)
}

func TestParser_SkipsZeroAmounts(t *testing.T) {
	csv := `Date,Description,Amount
2026-01-30,NO-OP,0.00
2026-01-31,REAL,-1.00
`

	p := statement.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, "REAL", txs[0].Description)
}
