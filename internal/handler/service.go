package handler

import (
	"context"
	"io"

	"github.com/perpusid/circulation-service/internal/model"
	"github.com/perpusid/circulation-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CirculationService interface {
	AddBook(ctx context.Context, req model.AddBookRequest) (model.Book, error)
	Register(ctx context.Context, name, email, phone string, borrowLimit int) (model.Member, error)
	LoginOrRegister(ctx context.Context, name string) (model.Member, error)
	Borrow(ctx context.Context, memberName string, bookID int) (model.Book, error)
	Return(ctx context.Context, memberName, titleKeyword string) (model.Book, error)
	Books(ctx context.Context, titleKeyword string) ([]model.Book, error)
	Member(ctx context.Context, name string) (model.Member, error)
	Members(ctx context.Context) ([]model.MemberRow, error)
	ActiveLoans(ctx context.Context) ([]model.Loan, error)
	Activity(ctx context.Context, limit int) ([]model.ActivityEntry, error)
	ExportActivityCSV(ctx context.Context, w io.Writer) error
	Dashboard(ctx context.Context) (model.Dashboard, error)
}

var _ CirculationService = (*service.Service)(nil)
