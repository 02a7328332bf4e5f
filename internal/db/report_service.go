package db

import (
	"fmt"
	"time"

	"spacevenue/internal/models"
)

// Report period selector.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodMonthly Period = "monthly"
)

// Report is the windowed revenue summary shown on the reports screen.
// Cash net is a liquidity figure and intentionally not part of TotalRevenue.
type Report struct {
	Title         string
	SessionsTotal float64
	SalesTotal    float64
	CashNet       float64
}

// TotalRevenue is session revenue plus item sales.
func (r Report) TotalRevenue() float64 {
	return r.SessionsTotal + r.SalesTotal
}

// SummaryRow is one line of the all-time export summary.
type SummaryRow struct {
	Section string
	Amount  float64
}

// BuildReport aggregates over the daily or monthly window. Empty windows
// yield zero totals, never an error.
func BuildReport(period Period) (*Report, error) {
	start, end, title, err := reportWindow(period, now())
	if err != nil {
		return nil, err
	}

	report := Report{Title: title}

	err = DB.Model(&models.Session{}).
		Where("start_ts BETWEEN ? AND ?", start, end).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&report.SessionsTotal).Error
	if err != nil {
		return nil, err
	}

	err = DB.Model(&models.ItemSale{}).
		Where("ts BETWEEN ? AND ?", start, end).
		Select("COALESCE(SUM(total), 0)").
		Scan(&report.SalesTotal).Error
	if err != nil {
		return nil, err
	}

	err = DB.Model(&models.CashTransaction{}).
		Where("ts BETWEEN ? AND ?", start, end).
		Select("COALESCE(SUM(CASE WHEN type = 'deposit' THEN amount ELSE -amount END), 0)").
		Scan(&report.CashNet).Error
	if err != nil {
		return nil, err
	}

	return &report, nil
}

// reportWindow computes inclusive window bounds in the stored timestamp
// format. Daily covers today 00:00:00 through 23:59:59 local time; monthly
// covers the first instant of the month through the last second of its last
// day. Both ends are built from wall-clock components, not duration
// arithmetic: on a DST transition day the day is not 24 hours long, and
// adding durations would push the bound into the next day.
func reportWindow(period Period, ref time.Time) (start, end, title string, err error) {
	switch period {
	case PeriodDaily:
		dayStart := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
		dayEnd := time.Date(ref.Year(), ref.Month(), ref.Day(), 23, 59, 59, 0, ref.Location())
		title = fmt.Sprintf("Daily Report - %s", dayStart.Format("2006-01-02"))
		return models.FormatTime(dayStart), models.FormatTime(dayEnd), title, nil
	case PeriodMonthly:
		monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		// Day 0 of the next month normalizes to the last day of this one.
		monthEnd := time.Date(ref.Year(), ref.Month()+1, 0, 23, 59, 59, 0, ref.Location())
		title = fmt.Sprintf("Monthly Report - %s", ref.Format("January 2006"))
		return models.FormatTime(monthStart), models.FormatTime(monthEnd), title, nil
	default:
		return "", "", "", fmt.Errorf("%w: unknown report period %q", ErrValidation, period)
	}
}

// SessionsForPeriod lists the completed sessions inside the daily or
// monthly report window, oldest first.
func SessionsForPeriod(period Period) ([]models.Session, error) {
	start, end, _, err := reportWindow(period, now())
	if err != nil {
		return nil, err
	}
	return GetSessionsInRange(start, end)
}

// ExportSummary returns the all-time totals behind the CSV export: session
// revenue, item sales, and net cash. An empty database yields three zeros.
func ExportSummary() ([]SummaryRow, error) {
	var sessions, sales, cash float64

	err := DB.Model(&models.Session{}).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&sessions).Error
	if err != nil {
		return nil, err
	}

	err = DB.Model(&models.ItemSale{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&sales).Error
	if err != nil {
		return nil, err
	}

	err = DB.Model(&models.CashTransaction{}).
		Select("COALESCE(SUM(CASE WHEN type = 'deposit' THEN amount ELSE -amount END), 0)").
		Scan(&cash).Error
	if err != nil {
		return nil, err
	}

	return []SummaryRow{
		{Section: "Sessions", Amount: sessions},
		{Section: "Item Sales", Amount: sales},
		{Section: "Cash Net", Amount: cash},
	}, nil
}
