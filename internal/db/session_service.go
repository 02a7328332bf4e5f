package db

import (
	"spacevenue/internal/models"
)

// RecordCompletedSession appends a finished station session. The engine
// produces the snapshot; live and paused timers never reach this table.
func RecordCompletedSession(session *models.Session) error {
	return DB.Create(session).Error
}

// GetSessionsInRange returns completed sessions whose start timestamp falls
// in [startTS, endTS], oldest first. Bounds are stored-format timestamp
// strings; lexicographic comparison is chronological by construction.
func GetSessionsInRange(startTS, endTS string) ([]models.Session, error) {
	var sessions []models.Session

	err := DB.Where("start_ts BETWEEN ? AND ?", startTS, endTS).
		Order("start_ts ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
