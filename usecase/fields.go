package usecase

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldNotFound is returned by ParseField when no line carries the label.
const FieldNotFound = "Not found"

// ParseField scans the model response line by line and returns the text after
// the first ':' on the first line whose prefix matches the label,
// case-insensitively. The response format is a prompt contract, not a schema;
// there is no validation beyond this.
func ParseField(text, field string) string {
	prefix := strings.ToLower(field)
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.ToLower(line), prefix) {
			// The first matching line decides; one without a ':' carries no
			// value, so later lines are not consulted.
			_, after, found := strings.Cut(line, ":")
			if !found {
				break
			}
			return strings.TrimSpace(after)
		}
	}
	return FieldNotFound
}

// SplitSkills splits a comma-separated skill list, trimming entries and
// dropping empty ones.
func SplitSkills(s string) []string {
	var skills []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			skills = append(skills, part)
		}
	}
	return skills
}

// ParsePercentage strips a trailing '%' and converts to a number. A
// non-numeric value is an error the pipeline maps to a skipped outcome.
func ParsePercentage(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid match percentage %q: %w", s, err)
	}
	return v, nil
}

// TotalPages computes the page count for a result listing.
func TotalPages(total int64, pageSize int) int {
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
