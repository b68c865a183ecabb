package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestPeriodStart(t *testing.T) {
	// 2026-08-19 is a Wednesday.
	now := time.Date(2026, 8, 19, 15, 30, 0, 0, time.UTC)

	t.Run("week starts on Monday", func(t *testing.T) {
		want := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
		if got := periodStart(now, "week"); !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("week on a Sunday", func(t *testing.T) {
		sunday := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
		want := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
		if got := periodStart(sunday, "week"); !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("month starts on the first", func(t *testing.T) {
		want := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		if got := periodStart(now, "month"); !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})
}

func TestDashboardStats(t *testing.T) {
	users := newFakeUserRepo()
	expenses := newFakeExpenseRepo()
	categories := newFakeCategoryRepo()
	expenseSvc := NewExpenseService(expenses, categories)
	svc := NewReportService(users, expenses)

	now := time.Date(2026, 8, 19, 15, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	ctx := context.Background()
	user := registerTestUser(t, users, "alice@example.com", "Secret1")
	if _, err := users.UpdateCurrency(ctx, user.ID, "EUR"); err != nil {
		t.Fatalf("UpdateCurrency returned error: %v", err)
	}

	food := categories.addDefault("Food")
	mkDate := func(day int) *time.Time {
		d := time.Date(2026, 8, day, 12, 0, 0, 0, time.UTC)
		return &d
	}
	mustCreate := func(amount float64, day int) {
		t.Helper()
		if _, err := expenseSvc.Create(ctx, user.ID, food.ID, amount, nil, mkDate(day)); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}
	mustCreate(10, 17) // Monday, inside the week
	mustCreate(20, 18) // Tuesday, inside the week
	mustCreate(30, 10) // previous week, inside the month

	t.Run("week", func(t *testing.T) {
		stats, err := svc.Stats(ctx, user.ID, "week")
		if err != nil {
			t.Fatalf("Stats returned error: %v", err)
		}
		if stats.TotalExpenses != 30 {
			t.Fatalf("expected weekly total 30, got %v", stats.TotalExpenses)
		}
		if stats.Currency != "EUR" {
			t.Fatalf("expected currency EUR, got %q", stats.Currency)
		}
		if len(stats.DailyData) != 2 {
			t.Fatalf("expected 2 daily buckets, got %d", len(stats.DailyData))
		}
		if stats.DailyData["2026-08-17"] != 10 || stats.DailyData["2026-08-18"] != 20 {
			t.Fatalf("unexpected daily data: %v", stats.DailyData)
		}
	})

	t.Run("unknown period falls back to month", func(t *testing.T) {
		stats, err := svc.Stats(ctx, user.ID, "year")
		if err != nil {
			t.Fatalf("Stats returned error: %v", err)
		}
		if stats.Period != "month" {
			t.Fatalf("expected period month, got %q", stats.Period)
		}
		if stats.TotalExpenses != 60 {
			t.Fatalf("expected monthly total 60, got %v", stats.TotalExpenses)
		}
	})

	t.Run("unknown user gets default currency", func(t *testing.T) {
		stats, err := svc.Stats(ctx, uuid.New(), "month")
		if err != nil {
			t.Fatalf("Stats returned error: %v", err)
		}
		if stats.Currency != "USD" {
			t.Fatalf("expected fallback currency USD, got %q", stats.Currency)
		}
		if stats.TotalExpenses != 0 {
			t.Fatalf("expected zero total, got %v", stats.TotalExpenses)
		}
	})
}

func TestExportReport(t *testing.T) {
	users := newFakeUserRepo()
	expenses := newFakeExpenseRepo()
	categories := newFakeCategoryRepo()
	expenseSvc := NewExpenseService(expenses, categories)
	svc := NewReportService(users, expenses)
	ctx := context.Background()

	name := "Alice"
	user, err := newAuthServiceForTests(users).Register(ctx, "alice@example.com", "Secret1", &name)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	food := categories.addDefault("Food")
	for day, amount := range map[int]float64{5: 10, 15: 20, 25: 30} {
		d := time.Date(2026, 8, day, 12, 0, 0, 0, time.UTC)
		if _, err := expenseSvc.Create(ctx, user.ID, food.ID, amount, nil, &d); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	report, err := svc.Export(ctx, user.ID, start, end)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	if len(report.Expenses) != 2 {
		t.Fatalf("expected 2 expenses in range, got %d", len(report.Expenses))
	}
	if report.Total != 30 {
		t.Fatalf("expected total 30, got %v", report.Total)
	}
	if report.UserName != "Alice" {
		t.Fatalf("expected user name Alice, got %q", report.UserName)
	}

	t.Run("unknown user", func(t *testing.T) {
		if _, err := svc.Export(ctx, uuid.New(), start, end); err != ErrInvalidCredentials {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}
