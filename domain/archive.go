package domain

import (
	"errors"
	"time"
)

// DayLayout names archived leaderboards.
const DayLayout = "2006-01-02"

var (
	ErrAlreadyArchived  = errors.New("leaderboard already archived for this day")
	ErrNothingToArchive = errors.New("leaderboard is empty, nothing to archive")
	ErrArchiveNotFound  = errors.New("archive not found")
)

// Archive is a snapshot of the leaderboard taken for a single day.
type Archive struct {
	Day        string    `bson:"_id" json:"day"`
	Scores     []Score   `bson:"scores" json:"scores"`
	ArchivedAt time.Time `bson:"archivedAt" json:"archived_at"`
}
