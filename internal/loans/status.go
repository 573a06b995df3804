package loans

import "github.com/eugenenazirov/loan-tracker/internal/dates"

const (
	onTimeGraceDays   = 5
	lateToleranceDays = 30
)

// CategorizePayment classifies a payment made on paid against due. A nil
// paid date means the payment is still outstanding.
func CategorizePayment(due dates.Date, paid *dates.Date) Status {
	if paid == nil {
		return StatusUnpaid
	}

	switch days := due.DaysUntil(*paid); {
	case days <= onTimeGraceDays:
		return StatusOnTime
	case days <= lateToleranceDays:
		return StatusLate
	default:
		return StatusDefaulted
	}
}

// LoanStatus classifies a loan by its most recent dated payment.
func LoanStatus(loan Loan) Status {
	var latest *dates.Date
	for i := range loan.Payments {
		paid := loan.Payments[i].PaymentDate
		if paid == nil {
			continue
		}
		if latest == nil || paid.After(*latest) {
			latest = paid
		}
	}
	if latest == nil {
		return StatusUnpaid
	}
	return CategorizePayment(loan.DueDate, latest)
}

// CategorizeLoanPayments flattens loans into one row per payment. A loan
// without payments contributes a single Unpaid row.
func CategorizeLoanPayments(loans []Loan) []CategorizedPayment {
	rows := make([]CategorizedPayment, 0, len(loans))
	for _, loan := range loans {
		row := CategorizedPayment{
			ID:           loan.ID,
			Name:         loan.Name,
			InterestRate: loan.InterestRate,
			Principal:    loan.Principal,
			DueDate:      loan.DueDate,
			Status:       StatusUnpaid,
		}

		if len(loan.Payments) == 0 {
			rows = append(rows, row)
			continue
		}

		for _, payment := range loan.Payments {
			row.PaymentDate = payment.Clone().PaymentDate
			row.Status = CategorizePayment(loan.DueDate, payment.PaymentDate)
			rows = append(rows, row)
		}
	}
	return rows
}
