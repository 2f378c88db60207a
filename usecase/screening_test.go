package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-screener/domain"
)

type fakeStore struct {
	saved []string
}

func (s *fakeStore) Sanitize(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

func (s *fakeStore) Save(src io.Reader, name string) (string, error) {
	if _, err := io.Copy(io.Discard, src); err != nil {
		return "", err
	}
	s.saved = append(s.saved, name)
	return "uploads/" + name, nil
}

type fakeExtractor struct {
	text string
	err  error
}

func (e *fakeExtractor) Extract(path string) (string, error) {
	return e.text, e.err
}

type fakeScorer struct {
	responses []string
	err       error
	gotTexts  []string
	calls     int
}

func (s *fakeScorer) Score(ctx context.Context, resumeText, jobDescription string) (string, error) {
	s.gotTexts = append(s.gotTexts, resumeText)
	if s.err != nil {
		return "", s.err
	}
	resp := s.responses[s.calls%len(s.responses)]
	s.calls++
	return resp, nil
}

type fakeResumeStore struct {
	resumes   []domain.Resume
	createErr error
}

func (f *fakeResumeStore) Create(ctx context.Context, resume *domain.Resume) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, r := range f.resumes {
		if r.JobID == resume.JobID && (r.FileName == resume.FileName || r.NameKey == resume.NameKey) {
			return domain.ErrDuplicate
		}
	}
	resume.ID = uint(len(f.resumes) + 1)
	f.resumes = append(f.resumes, *resume)
	return nil
}

func (f *fakeResumeStore) HasDuplicate(ctx context.Context, jobID uint, fileName, nameKey string) (bool, error) {
	for _, r := range f.resumes {
		if r.JobID == jobID && (r.FileName == fileName || r.NameKey == nameKey) {
			return true, nil
		}
	}
	return false, nil
}

func response(name string, percent string) string {
	return fmt.Sprintf(`Candidate Name: %s
Match Percentage: %s
Matching Skills: Go, SQL
Missing Skills: Kubernetes
Feedback: Decent fit`, name, percent)
}

func newTestPipeline(scorer *fakeScorer, resumes *fakeResumeStore) *Pipeline {
	return NewPipeline(&fakeStore{}, &fakeExtractor{text: "resume body"}, scorer, resumes)
}

func TestScreenStoresParsedResult(t *testing.T) {
	resumes := &fakeResumeStore{}
	scorer := &fakeScorer{responses: []string{response("jane doe", "85%")}}
	p := newTestPipeline(scorer, resumes)

	job := domain.Job{ID: 1, Description: "Backend engineer"}
	out := p.Screen(context.Background(), job, "jane resume.pdf", strings.NewReader("%PDF"))

	require.Equal(t, domain.OutcomeStored, out.Status)
	require.NotNil(t, out.Resume)
	assert.Equal(t, "Jane Doe", out.Resume.CandidateName)
	assert.Equal(t, "jane doe", out.Resume.NameKey)
	assert.Equal(t, 85.0, out.Resume.MatchPercentage)
	assert.Equal(t, []string{"Go", "SQL"}, out.Resume.MatchedSkills)
	assert.Equal(t, []string{"Kubernetes"}, out.Resume.MissingSkills)
	assert.Equal(t, "Decent fit", out.Resume.Feedback)
	assert.Equal(t, "jane_resume.pdf", out.Resume.FileName)
	assert.Len(t, resumes.resumes, 1)
}

func TestScreenSameFileNameIsDuplicate(t *testing.T) {
	resumes := &fakeResumeStore{}
	scorer := &fakeScorer{responses: []string{response("jane doe", "85%"), response("john smith", "60%")}}
	p := newTestPipeline(scorer, resumes)

	job := domain.Job{ID: 1}
	first := p.Screen(context.Background(), job, "resume.pdf", strings.NewReader("a"))
	second := p.Screen(context.Background(), job, "resume.pdf", strings.NewReader("b"))

	assert.Equal(t, domain.OutcomeStored, first.Status)
	assert.Equal(t, domain.OutcomeDuplicate, second.Status)
	assert.Len(t, resumes.resumes, 1)
}

func TestScreenSameCandidateNameIsDuplicate(t *testing.T) {
	resumes := &fakeResumeStore{}
	scorer := &fakeScorer{responses: []string{response("Jane Doe", "85%"), response("JANE DOE", "70%")}}
	p := newTestPipeline(scorer, resumes)

	job := domain.Job{ID: 1}
	first := p.Screen(context.Background(), job, "a.pdf", strings.NewReader("a"))
	second := p.Screen(context.Background(), job, "b.pdf", strings.NewReader("b"))

	assert.Equal(t, domain.OutcomeStored, first.Status)
	assert.Equal(t, domain.OutcomeDuplicate, second.Status)
	assert.Len(t, resumes.resumes, 1)
}

func TestScreenDifferentCandidatesBothStored(t *testing.T) {
	resumes := &fakeResumeStore{}
	scorer := &fakeScorer{responses: []string{response("jane doe", "85%"), response("john smith", "60%")}}
	p := newTestPipeline(scorer, resumes)

	job := domain.Job{ID: 1}
	first := p.Screen(context.Background(), job, "jane.pdf", strings.NewReader("a"))
	second := p.Screen(context.Background(), job, "john.pdf", strings.NewReader("b"))

	require.Equal(t, domain.OutcomeStored, first.Status)
	require.Equal(t, domain.OutcomeStored, second.Status)
	assert.Equal(t, 85.0, first.Resume.MatchPercentage)
	assert.Equal(t, 60.0, second.Resume.MatchPercentage)
	assert.Len(t, resumes.resumes, 2)
}

func TestScreenNonNumericPercentageSkips(t *testing.T) {
	resumes := &fakeResumeStore{}
	scorer := &fakeScorer{responses: []string{response("jane doe", "very high")}}
	p := newTestPipeline(scorer, resumes)

	out := p.Screen(context.Background(), domain.Job{ID: 1}, "jane.pdf", strings.NewReader("a"))

	assert.Equal(t, domain.OutcomeSkipped, out.Status)
	assert.Contains(t, out.Reason, "unparseable percentage")
	assert.Empty(t, resumes.resumes)
}

func TestScreenModelFailureSkips(t *testing.T) {
	resumes := &fakeResumeStore{}
	scorer := &fakeScorer{err: errors.New("rate limited")}
	p := newTestPipeline(scorer, resumes)

	out := p.Screen(context.Background(), domain.Job{ID: 1}, "jane.pdf", strings.NewReader("a"))

	assert.Equal(t, domain.OutcomeSkipped, out.Status)
	assert.Contains(t, out.Reason, "model call failed")
	assert.Empty(t, resumes.resumes)
}

func TestScreenExtractionFailureSkips(t *testing.T) {
	resumes := &fakeResumeStore{}
	scorer := &fakeScorer{responses: []string{response("jane doe", "85%")}}
	p := NewPipeline(&fakeStore{}, &fakeExtractor{err: errors.New("corrupt PDF")}, scorer, resumes)

	out := p.Screen(context.Background(), domain.Job{ID: 1}, "jane.pdf", strings.NewReader("a"))

	assert.Equal(t, domain.OutcomeSkipped, out.Status)
	assert.Contains(t, out.Reason, "extraction failed")
	assert.Empty(t, scorer.gotTexts, "scorer must not be called when extraction fails")
}

func TestScreenEmptyTextStillScored(t *testing.T) {
	resumes := &fakeResumeStore{}
	scorer := &fakeScorer{responses: []string{response("jane doe", "10%")}}
	p := NewPipeline(&fakeStore{}, &fakeExtractor{text: ""}, scorer, resumes)

	out := p.Screen(context.Background(), domain.Job{ID: 1}, "empty.xyz", strings.NewReader(""))

	require.Equal(t, domain.OutcomeStored, out.Status)
	require.Len(t, scorer.gotTexts, 1)
	assert.Equal(t, "", scorer.gotTexts[0], "empty text is passed through to the prompt unchanged")
}

func TestScreenInsertConflictIsDuplicate(t *testing.T) {
	// HasDuplicate said no, but the unique index disagrees: the concurrent
	// upload race resolves to a duplicate outcome, not an error.
	resumes := &fakeResumeStore{createErr: domain.ErrDuplicate}
	scorer := &fakeScorer{responses: []string{response("jane doe", "85%")}}
	p := newTestPipeline(scorer, resumes)

	out := p.Screen(context.Background(), domain.Job{ID: 1}, "jane.pdf", strings.NewReader("a"))

	assert.Equal(t, domain.OutcomeDuplicate, out.Status)
}
