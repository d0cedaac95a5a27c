package model

import (
	"time"
)

type Kind string

const (
	KindFiction    Kind = "FICTION"
	KindNonFiction Kind = "NON_FICTION"
)

func (k Kind) Valid() bool {
	return k == KindFiction || k == KindNonFiction
}

type Book struct {
	ID       int    `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Author   string `json:"author" db:"author"`
	Kind     Kind   `json:"kind" db:"kind"`
	Category string `json:"category" db:"category"`
	Borrowed bool   `json:"borrowed" db:"borrowed"`
	// BorrowerID is set iff Borrowed is true.
	BorrowerID *int `json:"borrowerID,omitempty" db:"borrower_id"`
}

type Member struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Email       string `json:"email" db:"email"`
	Phone       string `json:"phone" db:"phone"`
	BorrowLimit int    `json:"borrowLimit" db:"borrow_limit"`
	Loans       []Book `json:"loans" db:"-"`
}

// MemberRow is the admin member view with a live loan count.
type MemberRow struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	BorrowLimit int    `json:"borrowLimit" db:"borrow_limit"`
	ActiveLoans int    `json:"activeLoans" db:"active_loans"`
}

// Loan is one row of the global circulation view.
type Loan struct {
	Title    string `json:"title" db:"title"`
	Author   string `json:"author" db:"author"`
	Borrower string `json:"borrower" db:"borrower"`
}

type Action string

const (
	ActionAddBook        Action = "ADD_BOOK"
	ActionRegisterMember Action = "REGISTER_MEMBER"
	ActionBorrow         Action = "BORROW"
	ActionReturn         Action = "RETURN"
)

// AdminActor marks admin-initiated activity entries that have no member.
const AdminActor = "-"

type ActivityEntry struct {
	ID         int       `json:"-" db:"id"`
	LoggedAt   time.Time `json:"loggedAt" db:"logged_at"`
	Action     Action    `json:"action" db:"action"`
	BookTitle  string    `json:"bookTitle" db:"book_title"`
	MemberName string    `json:"memberName" db:"member_name"`
	Note       string    `json:"note" db:"note"`
}

// ActivityEvent is the payload published to the audit topic.
type ActivityEvent struct {
	EventID string        `json:"eventID"`
	Entry   ActivityEntry `json:"entry"`
}

type Dashboard struct {
	Activity []ActivityEntry `json:"activity"`
	Loans    []Loan          `json:"loans"`
	Members  []MemberRow     `json:"members"`
}

type AddBookRequest struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Kind     Kind   `json:"kind" validate:"required,oneof=FICTION NON_FICTION"`
	Category string `json:"category" validate:"required"`
}

type RegisterRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	BorrowLimit int    `json:"borrowLimit" validate:"required,min=1"`
}

type LoginRequest struct {
	Name string `json:"name" validate:"required"`
}

type BorrowRequest struct {
	MemberName string `json:"memberName" validate:"required"`
	BookID     int    `json:"bookID" validate:"required,min=1"`
}

type ReturnRequest struct {
	MemberName   string `json:"memberName" validate:"required"`
	TitleKeyword string `json:"titleKeyword" validate:"required"`
}
