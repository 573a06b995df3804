package storage

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/loan-tracker/internal/dates"
	"github.com/eugenenazirov/loan-tracker/internal/loans"
)

// yamlSeed represents the seed file structure.
type yamlSeed struct {
	Loans []yamlLoan `yaml:"loans"`
}

type yamlLoan struct {
	ID           int           `yaml:"id"`
	Name         string        `yaml:"name"`
	InterestRate float64       `yaml:"interest_rate"`
	Principal    float64       `yaml:"principal"`
	DueDate      string        `yaml:"due_date"`
	Payments     []yamlPayment `yaml:"payments"`
}

type yamlPayment struct {
	ID          int      `yaml:"id"`
	PaymentDate *string  `yaml:"payment_date"`
	Amount      *float64 `yaml:"amount"`
}

// LoadSeed reads loans from a YAML seed file.
func LoadSeed(path string) ([]loans.Loan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes loans from YAML. Dates must be YYYY-MM-DD; a payment
// without payment_date is treated as outstanding.
func ParseSeed(data []byte) ([]loans.Loan, error) {
	var seed yamlSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	out := make([]loans.Loan, 0, len(seed.Loans))
	for i, raw := range seed.Loans {
		due, err := dates.Parse(raw.DueDate)
		if err != nil {
			return nil, fmt.Errorf("loan %d due_date: %w", i, err)
		}

		loan := loans.Loan{
			ID:           raw.ID,
			Name:         raw.Name,
			InterestRate: raw.InterestRate,
			Principal:    raw.Principal,
			DueDate:      due,
		}

		for j, rp := range raw.Payments {
			paid, err := dates.ParseOptional(rp.PaymentDate)
			if err != nil {
				return nil, fmt.Errorf("loan %d payment %d payment_date: %w", i, j, err)
			}
			loan.Payments = append(loan.Payments, loans.Payment{
				ID:          rp.ID,
				LoanID:      raw.ID,
				PaymentDate: paid,
				Amount:      rp.Amount,
			})
		}

		out = append(out, loan)
	}
	return out, nil
}
