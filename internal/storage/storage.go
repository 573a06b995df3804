package storage

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/eugenenazirov/loan-tracker/internal/loans"
)

var (
	// ErrLoanNotFound indicates no loan exists with the requested ID.
	ErrLoanNotFound = errors.New("loan not found")
	// ErrInvalidLoan indicates the loan violates storage rules.
	ErrInvalidLoan = errors.New("loan must have a name and a due date")
)

// Storage provides access to loans and their payments.
type Storage interface {
	ListLoans() ([]loans.Loan, error)
	GetLoan(id int) (loans.Loan, error)
	CreateLoan(loan loans.Loan) (loans.Loan, error)
	AddPayment(loanID int, payment loans.Payment) (loans.Payment, error)
}

// MemoryStorage keeps loans in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu            sync.RWMutex
	loans         []loans.Loan
	nextLoanID    int
	nextPaymentID int
}

// NewMemoryStorage initialises an empty store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{nextLoanID: 1, nextPaymentID: 1}
}

// Seed replaces the stored loans. Loans and payments keep the IDs they carry;
// missing IDs are assigned.
func (s *MemoryStorage) Seed(seed []loans.Loan) error {
	for _, loan := range seed {
		if err := validateLoan(loan); err != nil {
			return fmt.Errorf("seed loan %d: %w", loan.ID, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loans = make([]loans.Loan, 0, len(seed))
	s.nextLoanID, s.nextPaymentID = 1, 1
	for _, loan := range seed {
		s.insertLocked(loan.Clone())
	}
	return nil
}

// ListLoans returns a defensive copy of all loans ordered by ID.
func (s *MemoryStorage) ListLoans() ([]loans.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]loans.Loan, len(s.loans))
	for i, loan := range s.loans {
		out[i] = loan.Clone()
	}
	return out, nil
}

// GetLoan returns a defensive copy of the loan with the given ID.
func (s *MemoryStorage) GetLoan(id int) (loans.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return loans.Loan{}, fmt.Errorf("%w: %d", ErrLoanNotFound, id)
	}
	return s.loans[idx].Clone(), nil
}

// CreateLoan stores a new loan and returns it with its assigned ID. Any ID
// set by the caller is ignored.
func (s *MemoryStorage) CreateLoan(loan loans.Loan) (loans.Loan, error) {
	if err := validateLoan(loan); err != nil {
		return loans.Loan{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	loan = loan.Clone()
	loan.ID = 0
	stored := s.insertLocked(loan)
	return stored.Clone(), nil
}

// AddPayment records a payment against an existing loan.
func (s *MemoryStorage) AddPayment(loanID int, payment loans.Payment) (loans.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(loanID)
	if idx < 0 {
		return loans.Payment{}, fmt.Errorf("%w: %d", ErrLoanNotFound, loanID)
	}

	payment = payment.Clone()
	payment.ID = s.nextPaymentID
	payment.LoanID = loanID
	s.nextPaymentID++

	s.loans[idx].Payments = append(s.loans[idx].Payments, payment)
	return payment.Clone(), nil
}

func (s *MemoryStorage) insertLocked(loan loans.Loan) loans.Loan {
	if loan.ID <= 0 || s.indexLocked(loan.ID) >= 0 {
		loan.ID = s.nextLoanID
	}
	if loan.ID >= s.nextLoanID {
		s.nextLoanID = loan.ID + 1
	}

	for i := range loan.Payments {
		p := &loan.Payments[i]
		p.LoanID = loan.ID
		if p.ID <= 0 {
			p.ID = s.nextPaymentID
		}
		if p.ID >= s.nextPaymentID {
			s.nextPaymentID = p.ID + 1
		}
	}

	s.loans = append(s.loans, loan)
	return loan
}

func (s *MemoryStorage) indexLocked(id int) int {
	for i := range s.loans {
		if s.loans[i].ID == id {
			return i
		}
	}
	return -1
}

func validateLoan(loan loans.Loan) error {
	if strings.TrimSpace(loan.Name) == "" || loan.DueDate.IsZero() {
		return ErrInvalidLoan
	}
	return nil
}
