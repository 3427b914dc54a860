package accounting

import (
	"github.com/ledgerline/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// maxScale is the number of decimal places amounts may carry.
// Balance comparison is exact at this precision; floats never touch amounts.
const maxScale = 2

// SumSides returns the total debit and total credit across lines.
func SumSides(lines []domain.JournalLine) (debits, credits decimal.Decimal) {
	debits = decimal.Zero
	credits = decimal.Zero
	for _, l := range lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	return debits, credits
}

// IsBalanced reports whether total debits equal total credits exactly.
func IsBalanced(lines []domain.JournalLine) bool {
	debits, credits := SumSides(lines)
	return debits.Equal(credits)
}

// EntryAmount computes the economic value of a balanced entry: the debit-side
// sum, which for a balanced entry equals the credit-side sum.
func EntryAmount(lines []domain.JournalLine) decimal.Decimal {
	debits, _ := SumSides(lines)
	return debits
}

// ValidAmount reports whether d is non-negative and within the supported
// decimal precision.
func ValidAmount(d decimal.Decimal) bool {
	return !d.IsNegative() && d.Exponent() >= -maxScale
}

// OneSided reports whether exactly one of debit/credit is positive.
// Zero/zero lines and lines with both sides set are rejected at draft time.
func OneSided(debit, credit decimal.Decimal) bool {
	return debit.IsPositive() != credit.IsPositive()
}
