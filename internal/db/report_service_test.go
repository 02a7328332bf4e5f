package db

import (
	"testing"
	"time"

	"spacevenue/internal/models"
)

func seedSession(t *testing.T, startTS string, cost float64) {
	t.Helper()

	err := RecordCompletedSession(&models.Session{
		StationName:     "Table 1",
		StartTS:         startTS,
		EndTS:           startTS,
		DurationSeconds: 3600,
		RatePerHour:     cost,
		Cost:            cost,
	})
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
}

func TestDailyReportWindowBoundaries(t *testing.T) {
	setupTestDB(t)
	pinClock(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local))

	seedSession(t, "2025-06-15T00:00:00", 10) // first instant of the day: in
	seedSession(t, "2025-06-15T23:59:59", 20) // last second of the day: in
	seedSession(t, "2025-06-16T00:00:00", 40) // next day: out
	seedSession(t, "2025-06-14T23:59:59", 80) // previous day: out

	report, err := BuildReport(PeriodDaily)
	if err != nil {
		t.Fatal(err)
	}
	if report.SessionsTotal != 30 {
		t.Fatalf("sessions total = %v, want 30", report.SessionsTotal)
	}
	if report.Title != "Daily Report - 2025-06-15" {
		t.Errorf("title = %q", report.Title)
	}
}

func TestMonthlyReportWindow(t *testing.T) {
	setupTestDB(t)
	pinClock(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local))

	seedSession(t, "2025-06-01T00:00:00", 10) // first instant of month: in
	seedSession(t, "2025-06-30T23:59:59", 20) // last second of month: in
	seedSession(t, "2025-07-01T00:00:00", 40) // next month: out
	seedSession(t, "2025-05-31T23:59:59", 80) // previous month: out

	report, err := BuildReport(PeriodMonthly)
	if err != nil {
		t.Fatal(err)
	}
	if report.SessionsTotal != 30 {
		t.Fatalf("sessions total = %v, want 30", report.SessionsTotal)
	}
	if report.Title != "Monthly Report - June 2025" {
		t.Errorf("title = %q", report.Title)
	}
}

func TestReportAggregatesAllSources(t *testing.T) {
	setupTestDB(t)
	pinClock(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local))

	seedSession(t, "2025-06-15T10:00:00", 90)

	item, err := CreateItem("Cola", 25)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := RecordSale(item.ID, 2); err != nil {
		t.Fatal(err)
	}

	if _, err := RecordCashTransaction("deposit", 500, "float"); err != nil {
		t.Fatal(err)
	}
	if _, err := RecordCashTransaction("withdrawal", 150, ""); err != nil {
		t.Fatal(err)
	}

	report, err := BuildReport(PeriodDaily)
	if err != nil {
		t.Fatal(err)
	}
	if report.SessionsTotal != 90 {
		t.Errorf("sessions total = %v, want 90", report.SessionsTotal)
	}
	if report.SalesTotal != 50 {
		t.Errorf("sales total = %v, want 50", report.SalesTotal)
	}
	if report.CashNet != 350 {
		t.Errorf("cash net = %v, want 350 (deposits minus withdrawals)", report.CashNet)
	}
	// Cash net is a liquidity figure, not revenue.
	if report.TotalRevenue() != 140 {
		t.Errorf("total revenue = %v, want 140", report.TotalRevenue())
	}
}

func TestReportWindowOnDSTTransitionDays(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tz database unavailable")
	}

	// 2025-03-09 is the US spring-forward day (23 wall-clock hours). The
	// window must still end at 23:59:59 of the same day.
	start, end, _, err := reportWindow(PeriodDaily, time.Date(2025, 3, 9, 12, 0, 0, 0, loc))
	if err != nil {
		t.Fatal(err)
	}
	if start != "2025-03-09T00:00:00" {
		t.Errorf("daily start = %q", start)
	}
	if end != "2025-03-09T23:59:59" {
		t.Errorf("daily end = %q, want 2025-03-09T23:59:59", end)
	}

	// November contains the fall-back day; the monthly bound must still be
	// the last second of November 30.
	start, end, _, err = reportWindow(PeriodMonthly, time.Date(2025, 11, 15, 12, 0, 0, 0, loc))
	if err != nil {
		t.Fatal(err)
	}
	if start != "2025-11-01T00:00:00" {
		t.Errorf("monthly start = %q", start)
	}
	if end != "2025-11-30T23:59:59" {
		t.Errorf("monthly end = %q, want 2025-11-30T23:59:59", end)
	}
}

func TestSessionsForPeriodListsWindowOnly(t *testing.T) {
	setupTestDB(t)
	pinClock(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local))

	seedSession(t, "2025-06-15T09:00:00", 10)
	seedSession(t, "2025-06-15T11:00:00", 20)
	seedSession(t, "2025-06-16T00:00:00", 40)

	sessions, err := SessionsForPeriod(PeriodDaily)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	// Oldest first.
	if sessions[0].StartTS != "2025-06-15T09:00:00" {
		t.Errorf("first session = %q", sessions[0].StartTS)
	}
}

func TestBuildReportRejectsUnknownPeriod(t *testing.T) {
	setupTestDB(t)

	if _, err := BuildReport(Period("weekly")); err == nil {
		t.Fatal("expected error for unknown period")
	}
}

func TestReportOverEmptyDatabaseIsZero(t *testing.T) {
	setupTestDB(t)
	pinClock(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local))

	report, err := BuildReport(PeriodDaily)
	if err != nil {
		t.Fatal(err)
	}
	if report.SessionsTotal != 0 || report.SalesTotal != 0 || report.CashNet != 0 {
		t.Fatalf("empty database report not all zero: %+v", report)
	}
}

func TestExportSummary(t *testing.T) {
	setupTestDB(t)
	pinClock(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local))

	// Empty database: three zero rows, no error.
	rows, err := ExportSummary()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	wantSections := []string{"Sessions", "Item Sales", "Cash Net"}
	for i, row := range rows {
		if row.Section != wantSections[i] {
			t.Errorf("row %d section = %q, want %q", i, row.Section, wantSections[i])
		}
		if row.Amount != 0 {
			t.Errorf("row %q amount = %v, want 0", row.Section, row.Amount)
		}
	}

	// The export is all-time: it ignores report windows entirely.
	seedSession(t, "2019-01-01T09:00:00", 60)
	if _, err := RecordCashTransaction("withdrawal", 25, ""); err != nil {
		t.Fatal(err)
	}

	rows, err = ExportSummary()
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].Amount != 60 {
		t.Errorf("sessions amount = %v, want 60", rows[0].Amount)
	}
	if rows[2].Amount != -25 {
		t.Errorf("cash net = %v, want -25", rows[2].Amount)
	}
}
