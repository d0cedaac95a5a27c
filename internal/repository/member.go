package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/perpusid/circulation-service/internal/errs"
	"github.com/perpusid/circulation-service/internal/model"
)

// CreateMember relies on the unique index on email: a violation is reported
// as ErrDuplicateEmail instead of a raw driver error.
func (r *repository) CreateMember(ctx context.Context, m model.Member) (model.Member, error) {
	q, args, err := qb.Insert(membersTableName).
		Columns("name", "email", "phone", "borrow_limit").
		Values(m.Name, m.Email, m.Phone, m.BorrowLimit).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Member{}, err
	}

	var created model.Member
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Member{}, errs.ErrDuplicateEmail
		}
		r.log.Error("CreateMember", zap.String("q", q), zap.Any("args", args))
		return model.Member{}, err
	}
	return created, nil
}

// GetMemberByName does a case-insensitive exact match. Names are not unique;
// the lowest id wins so the lookup stays deterministic.
func (r *repository) GetMemberByName(ctx context.Context, name string) (model.Member, error) {
	q := `
select id, name, email, phone, borrow_limit from members
where lower(name) = lower($1)
order by id
limit 1`

	var m model.Member
	if err := r.db.GetContext(ctx, &m, q, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, errs.ErrNotFound
		}
		return model.Member{}, err
	}

	loans, err := r.LoansFor(ctx, m.ID)
	if err != nil {
		return model.Member{}, err
	}
	m.Loans = loans
	return m, nil
}

func (r *repository) GetMemberByEmail(ctx context.Context, email string) (model.Member, error) {
	q, args, err := qb.Select("id", "name", "email", "phone", "borrow_limit").
		From(membersTableName).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return model.Member{}, err
	}

	var m model.Member
	if err := r.db.GetContext(ctx, &m, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, errs.ErrNotFound
		}
		return model.Member{}, err
	}

	loans, err := r.LoansFor(ctx, m.ID)
	if err != nil {
		return model.Member{}, err
	}
	m.Loans = loans
	return m, nil
}

func (r *repository) MemberExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := `select count(*) from members where email = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, q, email).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// LoanCount is always computed live so quota checks see the latest
// committed state.
func (r *repository) LoanCount(ctx context.Context, memberID int) (int, error) {
	q := `select count(*) from books where borrower_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, q, memberID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) ListMembers(ctx context.Context) ([]model.MemberRow, error) {
	q := `
select m.id, m.name, m.borrow_limit,
    (select count(*) from books b where b.borrower_id = m.id) as active_loans
from members m
order by m.id`

	var rows []model.MemberRow
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}
