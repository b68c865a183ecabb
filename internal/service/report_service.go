package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise-app/spendwise-api/internal/domain"
	"github.com/spendwise-app/spendwise-api/internal/repository/ports"
)

const defaultCurrency = "USD"

// DashboardStats is the aggregate view for one period.
type DashboardStats struct {
	TotalExpenses     float64                `json:"total_expenses"`
	Currency          string                 `json:"currency"`
	CategoryBreakdown []domain.CategoryTotal `json:"category_breakdown"`
	DailyData         map[string]float64     `json:"daily_data"`
	Period            string                 `json:"period"`
	StartDate         time.Time              `json:"start_date"`
	EndDate           time.Time              `json:"end_date"`
}

// ExportReport is the payload the client renders into a PDF.
type ExportReport struct {
	Expenses  []domain.Expense `json:"expenses"`
	Total     float64          `json:"total"`
	Currency  string           `json:"currency"`
	StartDate time.Time        `json:"start_date"`
	EndDate   time.Time        `json:"end_date"`
	UserName  string           `json:"user_name"`
}

type ReportService struct {
	users    ports.UserRepository
	expenses ports.ExpenseRepository
	now      func() time.Time
}

func NewReportService(users ports.UserRepository, expenses ports.ExpenseRepository) *ReportService {
	return &ReportService{users: users, expenses: expenses, now: time.Now}
}

// Stats aggregates the user's spending for the current week or month.
func (s *ReportService) Stats(ctx context.Context, userID uuid.UUID, period string) (*DashboardStats, error) {
	if period != "week" {
		period = "month"
	}

	now := s.now()
	start := periodStart(now, period)

	currency := defaultCurrency
	if user, err := s.users.FindByID(ctx, userID); err == nil && user.Currency != "" {
		currency = user.Currency
	} else if err != nil && !isNotFound(err) {
		return nil, err
	}

	total, err := s.expenses.SumByUser(ctx, userID, start, now)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.expenses.CategoryTotals(ctx, userID, start, now)
	if err != nil {
		return nil, err
	}

	daily, err := s.expenses.DailyTotals(ctx, userID, start, now)
	if err != nil {
		return nil, err
	}
	dailyData := make(map[string]float64, len(daily))
	for _, d := range daily {
		dailyData[d.Day.Format("2006-01-02")] = d.Amount
	}

	return &DashboardStats{
		TotalExpenses:     total,
		Currency:          currency,
		CategoryBreakdown: breakdown,
		DailyData:         dailyData,
		Period:            period,
		StartDate:         start,
		EndDate:           now,
	}, nil
}

// Export gathers the expenses and totals for a date range; PDF
// rendering happens client-side.
func (s *ReportService) Export(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (*ExportReport, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	expenses, err := s.expenses.ListByUser(ctx, userID, domain.ExpenseFilter{
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		return nil, err
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}

	userName := user.Email
	if user.Name != nil && *user.Name != "" {
		userName = *user.Name
	}

	currency := user.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	return &ExportReport{
		Expenses:  expenses,
		Total:     total,
		Currency:  currency,
		StartDate: startDate,
		EndDate:   endDate,
		UserName:  userName,
	}, nil
}

// periodStart returns the first instant of the current ISO week (Monday)
// or calendar month.
func periodStart(now time.Time, period string) time.Time {
	if period == "week" {
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		day := now.AddDate(0, 0, -(weekday - 1))
		return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
	}
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
