package loans

import (
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eugenenazirov/loan-tracker/internal/dates"
)

func TestPaymentInputNormalize(t *testing.T) {
	t.Parallel()

	payment, err := PaymentInput{LoanID: " 7 ", PaymentDate: "2025-03-10", Amount: "150.25"}.Normalize()
	require.NoError(t, err)

	assert.Equal(t, 7, payment.LoanID)
	require.NotNil(t, payment.PaymentDate)
	assert.Equal(t, dates.New(2025, time.March, 10), *payment.PaymentDate)
	require.NotNil(t, payment.Amount)
	assert.Equal(t, 150.25, *payment.Amount)
}

func TestPaymentInputOptionalFields(t *testing.T) {
	t.Parallel()

	payment, err := PaymentInput{LoanID: "1", PaymentDate: "  ", Amount: ""}.Normalize()
	require.NoError(t, err)

	assert.Nil(t, payment.PaymentDate)
	assert.Nil(t, payment.Amount)
}

func TestPaymentInputValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   PaymentInput
		field   string
		message string
	}{
		{"MissingLoan", PaymentInput{}, "loan_id", "Please select a loan"},
		{"ZeroLoan", PaymentInput{LoanID: "0"}, "loan_id", "Please select a valid loan"},
		{"TextLoan", PaymentInput{LoanID: "abc"}, "loan_id", "Please select a valid loan"},
		{"BadDate", PaymentInput{LoanID: "1", PaymentDate: "10/03/2025"}, "payment_date", "Please enter a valid date"},
		{"ImpossibleDate", PaymentInput{LoanID: "1", PaymentDate: "2025-02-30"}, "payment_date", "Please enter a valid date"},
		{"NegativeAmount", PaymentInput{LoanID: "1", Amount: "-1"}, "amount", "Amount must be a positive number"},
		{"TextAmount", PaymentInput{LoanID: "1", Amount: "lots"}, "amount", "Amount must be a positive number"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.input.Normalize()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPayment)

			var fieldErrs validation.Errors
			require.True(t, errors.As(err, &fieldErrs))
			require.Contains(t, fieldErrs, tc.field)
			assert.Equal(t, tc.message, fieldErrs[tc.field].Error())
		})
	}
}

func TestLoanInputNormalize(t *testing.T) {
	t.Parallel()

	loan, err := LoanInput{Name: " Car ", InterestRate: 4.5, Principal: 12000, DueDate: "2025-06-30"}.Normalize()
	require.NoError(t, err)

	assert.Equal(t, "Car", loan.Name)
	assert.Equal(t, 4.5, loan.InterestRate)
	assert.Equal(t, 12000.0, loan.Principal)
	assert.Equal(t, dates.New(2025, time.June, 30), loan.DueDate)
	assert.Zero(t, loan.ID)
}

func TestLoanInputRejectsBadDueDate(t *testing.T) {
	t.Parallel()

	_, err := LoanInput{Name: "Car", Principal: 1, DueDate: "2025-13-01"}.Normalize()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLoan)

	var fieldErrs validation.Errors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Contains(t, fieldErrs["due_date"].Error(), "2025-13-01")
	assert.Contains(t, fieldErrs["due_date"].Error(), "YYYY-MM-DD")
}

func TestLoanInputValidation(t *testing.T) {
	t.Parallel()

	tests := map[string]LoanInput{
		"MissingName":      {Principal: 1, DueDate: "2025-01-01"},
		"MissingPrincipal": {Name: "x", DueDate: "2025-01-01"},
		"NegativeRate":     {Name: "x", Principal: 1, InterestRate: -1, DueDate: "2025-01-01"},
		"MissingDueDate":   {Name: "x", Principal: 1},
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := input.Normalize()
			assert.ErrorIs(t, err, ErrInvalidLoan)
		})
	}
}

func TestLoanInputRejectsBlankName(t *testing.T) {
	t.Parallel()

	input := LoanInput{Name: "   ", Principal: 1, DueDate: "2025-01-01"}

	var fieldErrs validation.Errors
	require.True(t, errors.As(input.Validate(), &fieldErrs))
	assert.Contains(t, fieldErrs, "name")

	_, err := input.Normalize()
	assert.ErrorIs(t, err, ErrInvalidLoan)
}
