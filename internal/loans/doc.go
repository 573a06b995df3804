// Package loans holds the loan and payment model together with the rules
// that classify payments against a loan's due date.
package loans
