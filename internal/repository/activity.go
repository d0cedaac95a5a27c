package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/perpusid/circulation-service/internal/model"
)

func (r *repository) InsertActivity(ctx context.Context, e model.ActivityEntry) error {
	q, args, err := qb.Insert(activityTableName).
		Columns("action", "book_title", "member_name", "note").
		Values(e.Action, e.BookTitle, e.MemberName, e.Note).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("InsertActivity", zap.String("q", q), zap.Any("args", args))
		return err
	}
	return nil
}

func (r *repository) RecentActivity(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
	q, args, err := qb.Select("id", "logged_at", "action", "book_title", "member_name", "note").
		From(activityTableName).
		OrderBy("logged_at desc", "id desc").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var entries []model.ActivityEntry
	if err := r.db.SelectContext(ctx, &entries, q, args...); err != nil {
		return nil, err
	}
	return entries, nil
}
