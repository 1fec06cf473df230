package returntypes

import (
	"encoding/json"
	"time"
)

type Error struct {
	Error string `json:"error,omitempty"`
}

type AnalysisCreatedResponse struct {
	AnalysisGUID string `json:"analysis_guid"`
	Status       string `json:"status"`
}

type AnalysisState struct {
	Status        string `json:"status"`
	StatusMessage string `json:"status_message,omitempty"`
}

type AnalysisInfo struct {
	GUID          string `json:"guid"`
	Status        string `json:"status"`
	StatusMessage string `json:"status_message,omitempty"`

	Code     string `json:"code,omitempty"`
	Language string `json:"language"`

	Repository    string `json:"repository,omitempty"`
	Branch        string `json:"branch,omitempty"`
	CommitSHA     string `json:"commit_sha,omitempty"`
	CommitMessage string `json:"commit_message,omitempty"`
	CommitAuthor  string `json:"commit_author,omitempty"`
	FilePath      string `json:"file_path,omitempty"`

	OverallScore         float64 `json:"overall_score"`
	StyleScore           float64 `json:"style_score"`
	ComplexityScore      float64 `json:"complexity_score"`
	MaintainabilityScore float64 `json:"maintainability_score"`
	SecurityScore        float64 `json:"security_score"`

	Metrics json.RawMessage `json:"metrics,omitempty"`
	Issues  json.RawMessage `json:"issues,omitempty"`

	Label *int `json:"label,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type AnalysisListResponse struct {
	Analyzes []AnalysisInfo `json:"analyzes"`
}

type AuthorizedUser struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatarUrl"`
	GithubLogin string    `json:"githubLogin"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CheckAuthResponse struct {
	User AuthorizedUser `json:"user"`
}
