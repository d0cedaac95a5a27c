package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/perpusid/circulation-service/internal/errs"
	"github.com/perpusid/circulation-service/internal/model"
)

func (r *repository) InsertBook(ctx context.Context, book model.Book) (model.Book, error) {
	q, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "kind", "category").
		Values(book.Title, book.Author, book.Kind, book.Category).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var b model.Book
	if err := r.db.GetContext(ctx, &b, q, args...); err != nil {
		r.log.Error("InsertBook", zap.String("q", q), zap.Any("args", args))
		return model.Book{}, err
	}
	return b, nil
}

func (r *repository) GetBook(ctx context.Context, bookID int) (model.Book, error) {
	q, args, err := qb.Select("id", "title", "author", "kind", "category", "borrowed", "borrower_id").
		From(booksTableName).
		Where(sq.Eq{"id": bookID}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var b model.Book
	if err := r.db.GetContext(ctx, &b, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return b, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	q, args, err := qb.Select("id", "title", "author", "kind", "category", "borrowed", "borrower_id").
		From(booksTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) SearchBooksByTitle(ctx context.Context, substr string) ([]model.Book, error) {
	q, args, err := qb.Select("id", "title", "author", "kind", "category", "borrowed", "borrower_id").
		From(booksTableName).
		Where(sq.ILike{"title": "%" + substr + "%"}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

// IsBorrowed reads the borrowed flag straight from the store, never from a
// copy the caller may be holding.
func (r *repository) IsBorrowed(ctx context.Context, bookID int) (bool, error) {
	q := `select borrowed from books where id = $1`

	var borrowed bool
	if err := r.db.QueryRowContext(ctx, q, bookID).Scan(&borrowed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, errs.ErrNotFound
		}
		return false, err
	}
	return borrowed, nil
}

// BorrowBook flips the book to borrowed in a single conditional write. A
// false return means the guard failed: the book was already borrowed when
// the statement ran.
func (r *repository) BorrowBook(ctx context.Context, bookID, memberID int) (bool, error) {
	q := `
update books
    set borrowed = true, borrower_id = $1
where id = $2 and not borrowed`

	res, err := r.db.ExecContext(ctx, q, memberID, bookID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ReturnBook clears the loan only while the book is still held by this
// member, so a concurrent return cannot be applied twice.
func (r *repository) ReturnBook(ctx context.Context, bookID, memberID int) (bool, error) {
	q := `
update books
    set borrowed = false, borrower_id = null
where id = $1 and borrower_id = $2`

	res, err := r.db.ExecContext(ctx, q, bookID, memberID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *repository) LoansFor(ctx context.Context, memberID int) ([]model.Book, error) {
	q, args, err := qb.Select("id", "title", "author", "kind", "category", "borrowed", "borrower_id").
		From(booksTableName).
		Where(sq.Eq{"borrower_id": memberID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) ActiveLoans(ctx context.Context) ([]model.Loan, error) {
	q, args, err := qb.Select("b.title", "b.author", "m.name as borrower").
		From(booksTableName + " b").
		Join(membersTableName + " m on b.borrower_id = m.id").
		Where(sq.Eq{"b.borrowed": true}).
		OrderBy("b.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var loans []model.Loan
	if err := r.db.SelectContext(ctx, &loans, q, args...); err != nil {
		return nil, err
	}
	return loans, nil
}
