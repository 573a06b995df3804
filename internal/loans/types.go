package loans

import "github.com/eugenenazirov/loan-tracker/internal/dates"

// Status classifies a payment relative to its loan's due date.
type Status string

const (
	StatusOnTime    Status = "On Time"
	StatusLate      Status = "Late"
	StatusDefaulted Status = "Defaulted"
	StatusUnpaid    Status = "Unpaid"
)

// Loan is a single loan with its recorded payments.
type Loan struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	InterestRate float64    `json:"interestRate"`
	Principal    float64    `json:"principal"`
	DueDate      dates.Date `json:"dueDate"`
	Payments     []Payment  `json:"loanPayments"`
}

// Payment is a payment recorded against a loan. PaymentDate is nil when the
// payment has been registered but not yet made.
type Payment struct {
	ID          int         `json:"id"`
	LoanID      int         `json:"loanId"`
	PaymentDate *dates.Date `json:"paymentDate"`
	Amount      *float64    `json:"amount,omitempty"`
}

// CategorizedPayment is one row of the payments overview.
type CategorizedPayment struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	InterestRate float64     `json:"interestRate"`
	Principal    float64     `json:"principal"`
	DueDate      dates.Date  `json:"dueDate"`
	PaymentDate  *dates.Date `json:"paymentDate"`
	Status       Status      `json:"status"`
}

// Clone returns a deep copy of l.
func (l Loan) Clone() Loan {
	out := l
	if l.Payments != nil {
		out.Payments = make([]Payment, len(l.Payments))
		for i, p := range l.Payments {
			out.Payments[i] = p.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of p.
func (p Payment) Clone() Payment {
	out := p
	if p.PaymentDate != nil {
		d := *p.PaymentDate
		out.PaymentDate = &d
	}
	if p.Amount != nil {
		a := *p.Amount
		out.Amount = &a
	}
	return out
}
