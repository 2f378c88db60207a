package usecase

import (
	"context"
	"errors"
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"resume-screener/domain"
)

// TextExtractor returns the plain text of a stored file.
type TextExtractor interface {
	Extract(path string) (string, error)
}

// Scorer submits resume text and a job description to the model and returns
// the raw response.
type Scorer interface {
	Score(ctx context.Context, resumeText, jobDescription string) (string, error)
}

// FileStore persists raw uploads under sanitized names.
type FileStore interface {
	Sanitize(name string) string
	Save(src io.Reader, name string) (string, error)
}

// ResumeStore is the slice of the resume repository the pipeline needs.
type ResumeStore interface {
	Create(ctx context.Context, resume *domain.Resume) error
	HasDuplicate(ctx context.Context, jobID uint, fileName, nameKey string) (bool, error)
}

// Pipeline runs the screening steps for one uploaded file at a time:
// save, extract, score, parse, dedup, insert. Files in a batch are processed
// strictly sequentially by the caller.
type Pipeline struct {
	store     FileStore
	extractor TextExtractor
	scorer    Scorer
	resumes   ResumeStore
}

func NewPipeline(store FileStore, extractor TextExtractor, scorer Scorer, resumes ResumeStore) *Pipeline {
	return &Pipeline{
		store:     store,
		extractor: extractor,
		scorer:    scorer,
		resumes:   resumes,
	}
}

// Screen processes a single uploaded file and reports what happened to it.
// The saved file stays on disk regardless of the outcome.
func (p *Pipeline) Screen(ctx context.Context, job domain.Job, fileName string, src io.Reader) domain.Outcome {
	name := p.store.Sanitize(fileName)

	path, err := p.store.Save(src, name)
	if err != nil {
		return p.skip(job, name, "save failed", err)
	}

	// Empty text (zero-byte or unsupported file) is passed through unchanged
	// into the scoring prompt; the pipeline does not short-circuit on it.
	text, err := p.extractor.Extract(path)
	if err != nil {
		return p.skip(job, name, "extraction failed", err)
	}

	content, err := p.scorer.Score(ctx, text, job.Description)
	if err != nil {
		return p.skip(job, name, "model call failed", err)
	}

	nameKey := domain.NormalizeName(ParseField(content, "Candidate Name"))
	percent, err := ParsePercentage(ParseField(content, "Match Percentage"))
	if err != nil {
		return p.skip(job, name, "unparseable percentage", err)
	}

	dup, err := p.resumes.HasDuplicate(ctx, job.ID, name, nameKey)
	if err != nil {
		return p.skip(job, name, "duplicate check failed", err)
	}
	if dup {
		return domain.Outcome{FileName: name, Status: domain.OutcomeDuplicate}
	}

	resume := domain.Resume{
		JobID:           job.ID,
		CandidateName:   domain.DisplayName(nameKey),
		NameKey:         nameKey,
		MatchPercentage: percent,
		MatchedSkills:   SplitSkills(ParseField(content, "Matching Skills")),
		MissingSkills:   SplitSkills(ParseField(content, "Missing Skills")),
		Feedback:        ParseField(content, "Feedback"),
		FileName:        name,
		CreatedAt:       time.Now(),
	}

	if err := p.resumes.Create(ctx, &resume); err != nil {
		// Lost the race against a concurrent upload of the same candidate;
		// the unique index catches what the pre-check missed.
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.Outcome{FileName: name, Status: domain.OutcomeDuplicate}
		}
		return p.skip(job, name, "insert failed", err)
	}

	return domain.Outcome{FileName: name, Status: domain.OutcomeStored, Resume: &resume}
}

func (p *Pipeline) skip(job domain.Job, fileName, reason string, err error) domain.Outcome {
	log.WithFields(log.Fields{
		"job_id": job.ID,
		"file":   fileName,
		"reason": reason,
	}).WithError(err).Warn("skipping file")
	return domain.Outcome{FileName: fileName, Status: domain.OutcomeSkipped, Reason: reason + ": " + err.Error()}
}
