package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/perpusid/circulation-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	// catalog
	InsertBook(ctx context.Context, book model.Book) (model.Book, error)
	GetBook(ctx context.Context, bookID int) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	SearchBooksByTitle(ctx context.Context, substr string) ([]model.Book, error)
	IsBorrowed(ctx context.Context, bookID int) (bool, error)
	BorrowBook(ctx context.Context, bookID, memberID int) (bool, error)
	ReturnBook(ctx context.Context, bookID, memberID int) (bool, error)
	LoansFor(ctx context.Context, memberID int) ([]model.Book, error)
	ActiveLoans(ctx context.Context) ([]model.Loan, error)

	// members
	CreateMember(ctx context.Context, m model.Member) (model.Member, error)
	GetMemberByName(ctx context.Context, name string) (model.Member, error)
	GetMemberByEmail(ctx context.Context, email string) (model.Member, error)
	MemberExistsByEmail(ctx context.Context, email string) (bool, error)
	LoanCount(ctx context.Context, memberID int) (int, error)
	ListMembers(ctx context.Context) ([]model.MemberRow, error)

	// activity log
	InsertActivity(ctx context.Context, e model.ActivityEntry) error
	RecentActivity(ctx context.Context, limit int) ([]model.ActivityEntry, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName    = `books`
	membersTableName  = `members`
	activityTableName = `activity_log`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
