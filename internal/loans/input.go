package loans

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/eugenenazirov/loan-tracker/internal/dates"
)

// PaymentInput is a payment as submitted from the payment form. Every field
// arrives as text; PaymentDate and Amount may be blank.
type PaymentInput struct {
	LoanID      string `json:"loan_id"`
	PaymentDate string `json:"payment_date"`
	Amount      string `json:"amount"`
}

// Validate checks the submission field by field. The returned error is a
// validation.Errors keyed by JSON field name.
func (in PaymentInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.LoanID,
			validation.Required.Error("Please select a loan"),
			validation.By(positiveInteger("Please select a valid loan")),
		),
		validation.Field(&in.PaymentDate, validation.By(optionalDate("Please enter a valid date"))),
		validation.Field(&in.Amount, validation.By(nonNegativeNumber("Amount must be a positive number"))),
	)
}

// Normalize validates the submission and converts it into a Payment.
func (in PaymentInput) Normalize() (Payment, error) {
	if err := in.Validate(); err != nil {
		return Payment{}, fmt.Errorf("%w: %w", ErrInvalidPayment, err)
	}

	loanID, _ := strconv.Atoi(strings.TrimSpace(in.LoanID))
	payment := Payment{LoanID: loanID}

	if raw := strings.TrimSpace(in.PaymentDate); raw != "" {
		d, err := dates.Parse(raw)
		if err != nil {
			return Payment{}, fmt.Errorf("%w: %w", ErrInvalidPayment, err)
		}
		payment.PaymentDate = &d
	}

	if raw := strings.TrimSpace(in.Amount); raw != "" {
		amount, _ := strconv.ParseFloat(raw, 64)
		payment.Amount = &amount
	}

	return payment, nil
}

// LoanInput is a new loan as submitted to the API.
type LoanInput struct {
	Name         string  `json:"name"`
	InterestRate float64 `json:"interest_rate"`
	Principal    float64 `json:"principal"`
	DueDate      string  `json:"due_date"`
}

// Validate checks the submission field by field. The name is checked after
// trimming surrounding whitespace.
func (in LoanInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&in.InterestRate, validation.Min(0.0)),
		validation.Field(&in.Principal, validation.Required, validation.Min(0.0)),
		validation.Field(&in.DueDate, validation.Required, validation.By(strictDate)),
	)
}

// Normalize validates the submission and converts it into a Loan without an
// ID.
func (in LoanInput) Normalize() (Loan, error) {
	if err := in.Validate(); err != nil {
		return Loan{}, fmt.Errorf("%w: %w", ErrInvalidLoan, err)
	}

	due, err := dates.Parse(in.DueDate)
	if err != nil {
		return Loan{}, fmt.Errorf("%w: %w", ErrInvalidLoan, err)
	}

	return Loan{
		Name:         strings.TrimSpace(in.Name),
		InterestRate: in.InterestRate,
		Principal:    in.Principal,
		DueDate:      due,
	}, nil
}

func positiveInteger(message string) validation.RuleFunc {
	return func(value interface{}) error {
		raw, _ := value.(string)
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n <= 0 {
			return validation.NewError("validation_invalid_loan", message)
		}
		return nil
	}
}

func optionalDate(message string) validation.RuleFunc {
	return func(value interface{}) error {
		raw, _ := value.(string)
		if strings.TrimSpace(raw) == "" {
			return nil
		}
		if _, err := dates.Parse(strings.TrimSpace(raw)); err != nil {
			return validation.NewError("validation_invalid_date", message)
		}
		return nil
	}
}

func nonNegativeNumber(message string) validation.RuleFunc {
	return func(value interface{}) error {
		raw, _ := value.(string)
		if strings.TrimSpace(raw) == "" {
			return nil
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
			return validation.NewError("validation_invalid_amount", message)
		}
		return nil
	}
}

// strictDate surfaces the parser's own message so callers see the offending
// value and the expected layout.
func strictDate(value interface{}) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}
	if _, err := dates.Parse(raw); err != nil {
		return validation.NewError("validation_invalid_date_format", err.Error())
	}
	return nil
}
