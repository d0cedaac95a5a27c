package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/perpusid/circulation-service/internal/errs"
	"github.com/perpusid/circulation-service/internal/model"
	md "github.com/perpusid/circulation-service/pkg/middleware"
	"github.com/perpusid/circulation-service/pkg/validate"
)

type Handler struct {
	circulationSvc CirculationService
	log            *zap.Logger
}

func New(circulationSvc CirculationService, log *zap.Logger) *Handler {
	return &Handler{
		circulationSvc: circulationSvc,
		log:            log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/books", h.GetBooks)
	api.POST("/books", h.AddBook)

	api.POST("/members", h.Register)
	api.POST("/members/login", h.Login)
	api.GET("/members", h.GetMembers)
	api.GET("/members/:name/loans", h.GetMemberLoans)

	api.GET("/loans", h.GetActiveLoans)
	api.POST("/loans", h.Borrow)
	api.POST("/loans/return", h.Return)

	api.GET("/activity", h.GetActivity)
	api.GET("/activity/export", h.ExportActivity)

	api.GET("/dashboard", h.GetDashboard)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// toHTTPError maps the circulation error taxonomy onto HTTP statuses; the
// human-readable text lives here, at the presentation edge only.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrMemberNotFound),
		errors.Is(err, errs.ErrNoMatchingLoan),
		errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrAlreadyBorrowed),
		errors.Is(err, errs.ErrQuotaExceeded),
		errors.Is(err, errs.ErrDuplicateEmail):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

type outcomeResponse struct {
	Message string     `json:"message"`
	Book    model.Book `json:"book"`
}

func (h *Handler) GetBooks(c echo.Context) error {
	books, err := h.circulationSvc.Books(c.Request().Context(), c.QueryParam("title"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) AddBook(c echo.Context) error {
	var req model.AddBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	book, err := h.circulationSvc.AddBook(c.Request().Context(), req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	member, err := h.circulationSvc.Register(c.Request().Context(), req.Name, req.Email, req.Phone, req.BorrowLimit)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, member)
}

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	member, err := h.circulationSvc.LoginOrRegister(c.Request().Context(), req.Name)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, member)
}

func (h *Handler) GetMembers(c echo.Context) error {
	members, err := h.circulationSvc.Members(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, members)
}

func (h *Handler) GetMemberLoans(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("empty member name"))
	}
	member, err := h.circulationSvc.Member(c.Request().Context(), name)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, member.Loans)
}

func (h *Handler) GetActiveLoans(c echo.Context) error {
	loans, err := h.circulationSvc.ActiveLoans(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) Borrow(c echo.Context) error {
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	book, err := h.circulationSvc.Borrow(c.Request().Context(), req.MemberName, req.BookID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, outcomeResponse{
		Message: "borrowed: " + book.Title,
		Book:    book,
	})
}

func (h *Handler) Return(c echo.Context) error {
	var req model.ReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	book, err := h.circulationSvc.Return(c.Request().Context(), req.MemberName, req.TitleKeyword)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, outcomeResponse{
		Message: "returned: " + book.Title,
		Book:    book,
	})
}

func (h *Handler) GetActivity(c echo.Context) error {
	var (
		err   error
		limit int
	)
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if limit, err = strconv.Atoi(limitParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("limit is invalid"))
		}
	}
	entries, err := h.circulationSvc.Activity(c.Request().Context(), limit)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// ExportActivity renders the CSV into a buffer first so a store failure
// still surfaces as an error status instead of a committed empty 200.
func (h *Handler) ExportActivity(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.circulationSvc.ExportActivityCSV(c.Request().Context(), &buf); err != nil {
		return toHTTPError(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="activity_log.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *Handler) GetDashboard(c echo.Context) error {
	d, err := h.circulationSvc.Dashboard(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, d)
}
