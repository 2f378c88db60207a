package domain

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Resume is one candidate's scored submission against a job. Created once per
// successfully scored upload, immutable afterwards except deletion.
//
// NameKey holds the lower-cased candidate name; together with the composite
// unique indexes it closes the race the application-level duplicate pre-check
// alone would leave open.
type Resume struct {
	ID              uint     `gorm:"primaryKey"`
	JobID           uint     `gorm:"not null;uniqueIndex:idx_job_file;uniqueIndex:idx_job_candidate"`
	CandidateName   string   `gorm:"size:255;not null"`
	NameKey         string   `gorm:"size:255;not null;uniqueIndex:idx_job_candidate"`
	MatchPercentage float64  `gorm:"not null"`
	MatchedSkills   []string `gorm:"serializer:json;type:json"`
	MissingSkills   []string `gorm:"serializer:json;type:json"`
	Feedback        string   `gorm:"type:text"`
	FileName        string   `gorm:"size:255;not null;uniqueIndex:idx_job_file"`
	CreatedAt       time.Time
}

// NormalizeName lower-cases a candidate name for comparison.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DisplayName title-cases a candidate name for storage and display.
// A cases.Caser is not safe for concurrent use, so one is built per call.
func DisplayName(name string) string {
	return cases.Title(language.English).String(NormalizeName(name))
}
