// Package domain holds the leaderboard entities and their validation rules.
package domain

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	// DefaultDimension is used when a maze is requested with an unsupported dimension.
	DefaultDimension = 5

	maxNameLength = 30

	// TimestampLayout is the UTC layout scores are stamped with.
	TimestampLayout = "2006-01-02T15:04:05Z"
)

// ValidDimensions lists the maze dimensions offered to players.
var ValidDimensions = []int{3, 5, 7, 10, 15, 20, 100}

var (
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrInvalidTime      = errors.New("invalid time value")
	ErrInvalidDimension = errors.New("invalid dimension value")
)

// IsValidDimension reports whether dimension is one of ValidDimensions.
func IsValidDimension(dimension int) bool {
	return slices.Contains(ValidDimensions, dimension)
}

// Score is a single leaderboard entry.
type Score struct {
	ID        string  `bson:"_id" json:"-"`
	Name      string  `bson:"name" json:"name"`
	Time      float64 `bson:"time" json:"time"`
	Dimension int     `bson:"dimension" json:"dimension"`
	Timestamp string  `bson:"timestamp" json:"timestamp"`
}

// ScoreConfig holds the player supplied fields of a new Score.
type ScoreConfig struct {
	Name      string
	Time      float64
	Dimension int
	At        time.Time
}

// NewScore validates the config and creates a Score stamped with cfg.At in UTC.
// The name is trimmed and cut to 30 characters.
func NewScore(cfg ScoreConfig) (*Score, error) {
	name := strings.TrimSpace(cfg.Name)
	if utf8.RuneCountInString(name) > maxNameLength {
		name = string([]rune(name)[:maxNameLength])
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if cfg.Time < 0 || math.IsNaN(cfg.Time) || math.IsInf(cfg.Time, 0) {
		return nil, ErrInvalidTime
	}
	if !IsValidDimension(cfg.Dimension) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, cfg.Dimension)
	}

	return &Score{
		ID:        uuid.NewString(),
		Name:      name,
		Time:      cfg.Time,
		Dimension: cfg.Dimension,
		Timestamp: cfg.At.UTC().Format(TimestampLayout),
	}, nil
}
