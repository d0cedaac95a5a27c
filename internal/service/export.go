package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// exportLimit matches the original export window of the last 100 entries.
const exportLimit = 100

// ExportActivityCSV writes the recent activity log as CSV. encoding/csv
// applies standard quoting: fields with commas, quotes or newlines are
// wrapped and embedded quotes doubled.
func (s *Service) ExportActivityCSV(ctx context.Context, w io.Writer) error {
	entries, err := s.repo.RecentActivity(ctx, exportLimit)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Time", "Action", "Member", "Info"}); err != nil {
		return err
	}
	for _, e := range entries {
		rec := []string{
			e.LoggedAt.Format(time.DateTime),
			string(e.Action),
			e.MemberName,
			fmt.Sprintf("%s (%s)", e.BookTitle, e.Note),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
