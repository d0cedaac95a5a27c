package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/perpusid/circulation-service/internal/model"
)

func TestService_ExportActivityCSV(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newService(t)

	entries := []model.ActivityEntry{
		{
			LoggedAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			Action:     model.ActionBorrow,
			BookTitle:  "Clean Code",
			MemberName: "Ada",
			Note:       `say "hello", twice`,
		},
		{
			LoggedAt:   time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
			Action:     model.ActionAddBook,
			BookTitle:  "Harry Potter",
			MemberName: model.AdminActor,
			Note:       "admin added a FICTION book",
		},
	}
	repo.EXPECT().RecentActivity(ctx, 100).Return(entries, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportActivityCSV(ctx, &buf))

	want := "Time,Action,Member,Info\n" +
		"2024-05-01 10:00:00,BORROW,Ada,\"Clean Code (say \"\"hello\"\", twice)\"\n" +
		"2024-05-01 09:30:00,ADD_BOOK,-,Harry Potter (admin added a FICTION book)\n"
	require.Equal(t, want, buf.String())
}

func TestService_ExportActivityCSV_StoreError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newService(t)

	repo.EXPECT().RecentActivity(ctx, 100).Return(nil, errors.New("store unavailable"))

	var buf bytes.Buffer
	require.Error(t, svc.ExportActivityCSV(ctx, &buf))
	require.Zero(t, buf.Len())
}
