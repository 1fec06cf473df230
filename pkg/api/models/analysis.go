package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/codequal/codequal-api/internal/api/apierrors"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

//go:generate goqueryset -in analysis.go

type AnalysisStatus string

const (
	AnalysisStatusPending    AnalysisStatus = "pending"
	AnalysisStatusProcessing AnalysisStatus = "processing"
	AnalysisStatusCompleted  AnalysisStatus = "completed"
	AnalysisStatusFailed     AnalysisStatus = "failed"
)

func (s AnalysisStatus) IsFinished() bool {
	return s == AnalysisStatusCompleted || s == AnalysisStatusFailed
}

// gen:qs
type Analysis struct {
	gorm.Model

	GUID          string
	Status        AnalysisStatus
	StatusMessage string

	Code     string
	Language string

	Repository    string // in form "owner/name"
	Branch        string
	CommitSHA     string
	CommitMessage string
	CommitAuthor  string
	FilePath      string

	UserID *uint // set only for authorized submissions

	OverallScore         float64
	StyleScore           float64
	ComplexityScore      float64
	MaintainabilityScore float64
	SecurityScore        float64

	MetricsJSON json.RawMessage `gorm:"type:jsonb"`
	IssuesJSON  json.RawMessage `gorm:"type:jsonb"`

	Label *int // smell label for classifier training: 0 or 1

	Version int
}

func (a Analysis) GoString() string {
	return fmt.Sprintf("{ID: %d, GUID: %s, Status: %s}", a.ID, a.GUID, a.Status)
}

func (a Analysis) IsFinished() bool {
	return a.Status.IsFinished()
}

func (a Analysis) RepoOwner() string {
	return strings.ToLower(strings.Split(a.Repository, "/")[0])
}

func (a Analysis) RepoName() string {
	return strings.ToLower(strings.Split(a.Repository, "/")[1])
}

func (a *Analysis) MarshalMetrics(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %#v as metrics", v)
	}
	a.MetricsJSON = data
	return nil
}

func (a *Analysis) MarshalIssues(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %#v as issues", v)
	}
	a.IssuesJSON = data
	return nil
}

func (u AnalysisUpdater) UpdateRequired() error {
	n, err := u.UpdateNum()
	if err != nil {
		return err
	}

	if n == 0 {
		return apierrors.NewRaceConditionError("analysis was changed in parallel request")
	}

	return nil
}
