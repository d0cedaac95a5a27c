package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/perpusid/circulation-service/internal/errs"
	"github.com/perpusid/circulation-service/internal/model"
	"github.com/perpusid/circulation-service/internal/repository"
	"github.com/perpusid/circulation-service/pkg/kafka"
)

const (
	// defaultBorrowLimit is the quota given to walk-in members registered
	// through the login flow.
	defaultBorrowLimit = 3

	// recentLimit caps the activity view, as the original console did.
	recentLimit = 50
)

// AuditPublisher ships activity entries to the audit stream.
type AuditPublisher interface {
	Publish(topic string, v any) error
}

type Service struct {
	log   *zap.Logger
	repo  repository.Repository
	audit AuditPublisher
}

// NewService wires the circulation service. audit may be nil when no broker
// is configured.
func NewService(repo repository.Repository, audit AuditPublisher, log *zap.Logger) *Service {
	return &Service{
		log:   log,
		repo:  repo,
		audit: audit,
	}
}

// record appends one activity entry. A failed write must not fail the
// primary transaction: it is reported on the diagnostic channel only.
func (s *Service) record(ctx context.Context, action model.Action, bookTitle, memberName, note string) {
	e := model.ActivityEntry{
		Action:     action,
		BookTitle:  bookTitle,
		MemberName: memberName,
		Note:       note,
	}
	if err := s.repo.InsertActivity(ctx, e); err != nil {
		s.log.Error("record activity", zap.String("action", string(action)), zap.Error(err))
	}
	if s.audit != nil {
		event := model.ActivityEvent{EventID: uuid.NewString(), Entry: e}
		if err := s.audit.Publish(kafka.ActivityTopic, event); err != nil {
			s.log.Warn("publish audit event", zap.Error(err))
		}
	}
}

func (s *Service) AddBook(ctx context.Context, req model.AddBookRequest) (model.Book, error) {
	title := strings.TrimSpace(req.Title)
	author := strings.TrimSpace(req.Author)
	category := strings.TrimSpace(req.Category)
	if title == "" || author == "" || category == "" || !req.Kind.Valid() {
		return model.Book{}, errs.ErrValidation
	}

	book, err := s.repo.InsertBook(ctx, model.Book{
		Title:    title,
		Author:   author,
		Kind:     req.Kind,
		Category: category,
	})
	if err != nil {
		return model.Book{}, err
	}

	s.record(ctx, model.ActionAddBook, book.Title, model.AdminActor, "admin added a "+string(book.Kind)+" book")
	return book, nil
}

// Register creates a member. Email is the unique contact identity: the same
// name re-registering with the same email gets the existing member back,
// while another name claiming a taken email is rejected.
func (s *Service) Register(ctx context.Context, name, email, phone string, borrowLimit int) (model.Member, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if name == "" || email == "" || phone == "" || borrowLimit <= 0 {
		return model.Member{}, errs.ErrValidation
	}

	existing, err := s.repo.GetMemberByEmail(ctx, email)
	switch {
	case err == nil:
		if strings.EqualFold(existing.Name, name) {
			return existing, nil
		}
		return model.Member{}, errs.ErrDuplicateEmail
	case !errors.Is(err, errs.ErrNotFound):
		return model.Member{}, err
	}

	if _, err := s.repo.CreateMember(ctx, model.Member{
		Name:        name,
		Email:       email,
		Phone:       phone,
		BorrowLimit: borrowLimit,
	}); err != nil {
		// a concurrent registration may have claimed the email since the
		// lookup above; the same name is still an idempotent success
		if errors.Is(err, errs.ErrDuplicateEmail) {
			winner, lookupErr := s.repo.GetMemberByEmail(ctx, email)
			if lookupErr == nil && strings.EqualFold(winner.Name, name) {
				return winner, nil
			}
			return model.Member{}, errs.ErrDuplicateEmail
		}
		return model.Member{}, err
	}

	s.record(ctx, model.ActionRegisterMember, "", name, "new member registered: "+email)

	// reload so the member carries its (empty) loan list
	return s.repo.GetMemberByEmail(ctx, email)
}

// LoginOrRegister resolves a member by name, registering a new one with the
// walk-in defaults on first visit.
func (s *Service) LoginOrRegister(ctx context.Context, name string) (model.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Member{}, errs.ErrValidation
	}

	m, err := s.repo.GetMemberByName(ctx, name)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return model.Member{}, err
	}

	return s.Register(ctx, name, name+"@perpus.local", "0000000000", defaultBorrowLimit)
}

func (s *Service) Borrow(ctx context.Context, memberName string, bookID int) (model.Book, error) {
	member, err := s.repo.GetMemberByName(ctx, memberName)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Book{}, errs.ErrMemberNotFound
		}
		return model.Book{}, err
	}

	borrowed, err := s.repo.IsBorrowed(ctx, bookID)
	if err != nil {
		return model.Book{}, err
	}
	if borrowed {
		return model.Book{}, errs.ErrAlreadyBorrowed
	}

	count, err := s.repo.LoanCount(ctx, member.ID)
	if err != nil {
		return model.Book{}, err
	}
	if count >= member.BorrowLimit {
		return model.Book{}, errs.ErrQuotaExceeded
	}

	ok, err := s.repo.BorrowBook(ctx, bookID, member.ID)
	if err != nil {
		return model.Book{}, err
	}
	if !ok {
		// somebody else won the race since the availability check above
		return model.Book{}, errs.ErrAlreadyBorrowed
	}

	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.Book{}, err
	}

	s.record(ctx, model.ActionBorrow, book.Title, member.Name, "member borrowed the book")
	return book, nil
}

// Return gives back the first of the member's own loans whose title contains
// the keyword. Loans come back from the store in ascending book id, so the
// tie-break is deterministic.
func (s *Service) Return(ctx context.Context, memberName, titleKeyword string) (model.Book, error) {
	member, err := s.repo.GetMemberByName(ctx, memberName)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Book{}, errs.ErrMemberNotFound
		}
		return model.Book{}, err
	}

	keyword := strings.ToLower(strings.TrimSpace(titleKeyword))
	var target model.Book
	found := false
	for _, b := range member.Loans {
		if strings.Contains(strings.ToLower(b.Title), keyword) {
			target, found = b, true
			break
		}
	}
	if !found {
		return model.Book{}, errs.ErrNoMatchingLoan
	}

	ok, err := s.repo.ReturnBook(ctx, target.ID, member.ID)
	if err != nil {
		return model.Book{}, err
	}
	if !ok {
		// the loan vanished between the lookup and the write
		return model.Book{}, errs.ErrNoMatchingLoan
	}

	s.record(ctx, model.ActionReturn, target.Title, member.Name, "book returned")

	target.Borrowed = false
	target.BorrowerID = nil
	return target, nil
}

// Books lists the catalog; a non-empty keyword narrows it to a
// case-insensitive title substring match. The empty-keyword special case
// lives here, not in the store.
func (s *Service) Books(ctx context.Context, titleKeyword string) ([]model.Book, error) {
	if titleKeyword == "" {
		return s.repo.ListBooks(ctx)
	}
	return s.repo.SearchBooksByTitle(ctx, titleKeyword)
}

func (s *Service) Member(ctx context.Context, name string) (model.Member, error) {
	m, err := s.repo.GetMemberByName(ctx, name)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Member{}, errs.ErrMemberNotFound
		}
		return model.Member{}, err
	}
	return m, nil
}

func (s *Service) Members(ctx context.Context) ([]model.MemberRow, error) {
	return s.repo.ListMembers(ctx)
}

func (s *Service) ActiveLoans(ctx context.Context) ([]model.Loan, error) {
	return s.repo.ActiveLoans(ctx)
}

func (s *Service) Activity(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
	if limit <= 0 || limit > recentLimit {
		limit = recentLimit
	}
	return s.repo.RecentActivity(ctx, limit)
}

// Dashboard gathers the three admin views in one round trip.
func (s *Service) Dashboard(ctx context.Context) (model.Dashboard, error) {
	var d model.Dashboard

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		d.Activity, err = s.repo.RecentActivity(ctx, recentLimit)
		return err
	})
	gg.Go(func() error {
		var err error
		d.Loans, err = s.repo.ActiveLoans(ctx)
		return err
	})
	gg.Go(func() error {
		var err error
		d.Members, err = s.repo.ListMembers(ctx)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.Dashboard{}, err
	}
	return d, nil
}
