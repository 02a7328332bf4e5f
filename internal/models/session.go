package models

// Session is a completed station rental, written once when a timer stops.
// Live timers are never persisted; see internal/station. The rate and cost
// are snapshots taken at stop time.
type Session struct {
	ID              uint    `gorm:"primarykey" json:"id"`
	StationName     string  `gorm:"not null" json:"station_name"`
	CustomerName    string  `json:"customer_name"`
	StartTS         string  `gorm:"column:start_ts;not null;index" json:"start_ts"`
	EndTS           string  `gorm:"column:end_ts;not null" json:"end_ts"`
	DurationSeconds int     `gorm:"not null" json:"duration_seconds"`
	RatePerHour     float64 `gorm:"not null" json:"rate_per_hour"`
	Cost            float64 `gorm:"not null" json:"cost"`
}
