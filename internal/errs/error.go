package errs

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrMemberNotFound  = errors.New("member is not registered")
	ErrAlreadyBorrowed = errors.New("book is borrowed by someone else")
	ErrQuotaExceeded   = errors.New("borrow limit reached")
	ErrNoMatchingLoan  = errors.New("no current loan matches that title")
	ErrDuplicateEmail  = errors.New("email is already registered to another member")
	ErrValidation      = errors.New("required field is blank")
)
