// Package leaderboardapi exposes the score leaderboard over HTTP.
package leaderboardapi

// AddScoreRequest represents a finished run submitted by a player.
type AddScoreRequest struct {
	Name      *string  `json:"name"`
	Time      *float64 `json:"time"`
	Dimension *int     `json:"dimension"`
}

// AddScoreResponse acknowledges a stored score.
type AddScoreResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
