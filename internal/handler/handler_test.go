package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/perpusid/circulation-service/internal/errs"
	"github.com/perpusid/circulation-service/internal/handler"
	"github.com/perpusid/circulation-service/internal/model"
	"github.com/perpusid/circulation-service/pkg/validate"

	service_mocks "github.com/perpusid/circulation-service/internal/handler/mocks"
)

func intPtr(v int) *int { return &v }

func newTestRouter(t *testing.T) (*echo.Echo, *service_mocks.MockCirculationService, *handler.Handler) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	svc := service_mocks.NewMockCirculationService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	return e, svc, h
}

func TestHandler_Borrow(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	cleanCode := model.Book{
		ID: 5, Title: "Clean Code", Author: "Robert C. Martin",
		Kind: model.KindNonFiction, Category: "Programming",
		Borrowed: true, BorrowerID: intPtr(7),
	}

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: `{"memberName":"Ada","bookID":5}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Borrow(context.Background(), "Ada", 5).
					Return(cleanCode, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"message":"borrowed: Clean Code","book":{"id":5,"title":"Clean Code","author":"Robert C. Martin","kind":"NON_FICTION","category":"Programming","borrowed":true,"borrowerID":7}}`,
			},
			wantErr: false,
		},
		{
			name: "err. member not registered",
			body: `{"memberName":"Nobody","bookID":5}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Borrow(context.Background(), "Nobody", 5).
					Return(model.Book{}, errs.ErrMemberNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"member is not registered"}`,
			},
			wantErr: true,
		},
		{
			name: "err. book already borrowed",
			body: `{"memberName":"Ada","bookID":5}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Borrow(context.Background(), "Ada", 5).
					Return(model.Book{}, errs.ErrAlreadyBorrowed)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book is borrowed by someone else"}`,
			},
			wantErr: true,
		},
		{
			name: "err. quota exceeded",
			body: `{"memberName":"Ada","bookID":5}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Borrow(context.Background(), "Ada", 5).
					Return(model.Book{}, errs.ErrQuotaExceeded)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"borrow limit reached"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. memberName required",
			body:         `{"bookID":5}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
		{
			name: "err. internal",
			body: `{"memberName":"Ada","bookID":5}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Borrow(context.Background(), "Ada", 5).
					Return(model.Book{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newTestRouter(t)
			e.POST("/loans", h.Borrow)

			r := httptest.NewRequest(http.MethodPost, "/loans", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_Return(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: `{"memberName":"Ada","titleKeyword":"clean"}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Return(context.Background(), "Ada", "clean").
					Return(model.Book{
						ID: 5, Title: "Clean Code", Author: "Robert C. Martin",
						Kind: model.KindNonFiction, Category: "Programming",
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"message":"returned: Clean Code","book":{"id":5,"title":"Clean Code","author":"Robert C. Martin","kind":"NON_FICTION","category":"Programming","borrowed":false}}`,
			},
			wantErr: false,
		},
		{
			name: "err. no matching loan",
			body: `{"memberName":"Ada","titleKeyword":"gatsby"}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Return(context.Background(), "Ada", "gatsby").
					Return(model.Book{}, errs.ErrNoMatchingLoan)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"no current loan matches that title"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. titleKeyword required",
			body:         `{"memberName":"Ada"}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newTestRouter(t)
			e.POST("/loans/return", h.Return)

			r := httptest.NewRequest(http.MethodPost, "/loans/return", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: `{"name":"Ada","email":"ada@mail.test","phone":"0812","borrowLimit":2}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Register(context.Background(), "Ada", "ada@mail.test", "0812", 2).
					Return(model.Member{
						ID: 1, Name: "Ada", Email: "ada@mail.test", Phone: "0812",
						BorrowLimit: 2, Loans: []model.Book{},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":1,"name":"Ada","email":"ada@mail.test","phone":"0812","borrowLimit":2,"loans":[]}`,
			},
			wantErr: false,
		},
		{
			name: "err. email taken by another name",
			body: `{"name":"Grace","email":"ada@mail.test","phone":"0812","borrowLimit":2}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Register(context.Background(), "Grace", "ada@mail.test", "0812", 2).
					Return(model.Member{}, errs.ErrDuplicateEmail)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"email is already registered to another member"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. email malformed",
			body:         `{"name":"Ada","email":"not-an-email","phone":"0812","borrowLimit":2}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newTestRouter(t)
			e.POST("/members", h.Register)

			r := httptest.NewRequest(http.MethodPost, "/members", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_GetBooks(t *testing.T) {
	t.Parallel()
	e, svc, h := newTestRouter(t)
	e.GET("/books", h.GetBooks)

	svc.EXPECT().
		Books(context.Background(), "potter").
		Return([]model.Book{
			{ID: 1, Title: "Harry Potter", Author: "J.K. Rowling", Kind: model.KindFiction, Category: "Fantasy"},
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/books?title=potter", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`[{"id":1,"title":"Harry Potter","author":"J.K. Rowling","kind":"FICTION","category":"Fantasy","borrowed":false}]`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_ExportActivity(t *testing.T) {
	t.Parallel()
	e, svc, h := newTestRouter(t)
	e.GET("/activity/export", h.ExportActivity)

	svc.EXPECT().
		ExportActivityCSV(context.Background(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w io.Writer) error {
			_, err := w.Write([]byte("Time,Action,Member,Info\n"))
			return err
		})

	r := httptest.NewRequest(http.MethodGet, "/activity/export", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/csv; charset=utf-8", w.Header().Get(echo.HeaderContentType))
	require.Equal(t, "Time,Action,Member,Info", strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_ExportActivity_StoreError(t *testing.T) {
	t.Parallel()
	e, svc, h := newTestRouter(t)
	e.GET("/activity/export", h.ExportActivity)

	svc.EXPECT().
		ExportActivityCSV(context.Background(), gomock.Any()).
		Return(errors.New("store unavailable"))

	r := httptest.NewRequest(http.MethodGet, "/activity/export", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, `{"message":"store unavailable"}`, strings.Trim(w.Body.String(), "\n"))
}
