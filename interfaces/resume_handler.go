package interfaces

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"resume-screener/domain"
	"resume-screener/infrastructure"
	"resume-screener/repository"
	"resume-screener/usecase"
)

const resultsPageSize = 100

// ResumeHandler serves upload, results and resume deletion routes.
type ResumeHandler struct {
	jobs     *repository.JobRepository
	resumes  *repository.ResumeRepository
	pipeline *usecase.Pipeline
	storage  *infrastructure.Storage
	// strict surfaces skipped-file outcomes to the user instead of dropping
	// them silently.
	strict bool
}

func NewResumeHandler(router *gin.Engine, jobs *repository.JobRepository, resumes *repository.ResumeRepository,
	pipeline *usecase.Pipeline, storage *infrastructure.Storage, strict bool) *ResumeHandler {
	h := &ResumeHandler{
		jobs:     jobs,
		resumes:  resumes,
		pipeline: pipeline,
		storage:  storage,
		strict:   strict,
	}

	router.GET("/upload/:job_id", RequireLogin(), h.UploadPage)
	router.POST("/upload/:job_id", RequireLogin(), h.Upload)
	router.GET("/results/:job_id", RequireLogin(), h.Results)
	router.POST("/delete-resume/:resume_id/:job_id", h.DeleteResume)
	router.POST("/delete-selected-resumes/:job_id", h.DeleteSelected)
	router.GET("/uploads/:filename", h.Download)

	return h
}

func (h *ResumeHandler) UploadPage(c *gin.Context) {
	id, err := parseID(c.Param("job_id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	job, err := h.jobs.ByID(c.Request.Context(), id)
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "upload.html", gin.H{"job": job})
}

// Upload runs the screening pipeline once per posted file, strictly in order.
func (h *ResumeHandler) Upload(c *gin.Context) {
	id, err := parseID(c.Param("job_id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	job, err := h.jobs.ByID(c.Request.Context(), id)
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.String(http.StatusBadRequest, "invalid upload")
		return
	}

	sess := sessions.Default(c)
	for _, fh := range form.File["resumes"] {
		src, err := fh.Open()
		if err != nil {
			if h.strict {
				sess.AddFlash(fmt.Sprintf("Resume '%s' skipped: unreadable upload.", fh.Filename))
			}
			continue
		}
		outcome := h.pipeline.Screen(c.Request.Context(), job, fh.Filename, src)
		src.Close()

		switch outcome.Status {
		case domain.OutcomeDuplicate:
			sess.AddFlash(fmt.Sprintf("Resume '%s' already uploaded.", outcome.FileName))
		case domain.OutcomeSkipped:
			if h.strict {
				sess.AddFlash(fmt.Sprintf("Resume '%s' skipped: %s.", outcome.FileName, outcome.Reason))
			}
		}
	}
	_ = sess.Save()

	c.Redirect(http.StatusFound, fmt.Sprintf("/results/%d", job.ID))
}

type resumeRow struct {
	domain.Resume
	FormattedDate string
}

// Results renders one page of screening results, 100 per page, sortable by
// match percentage or recency.
func (h *ResumeHandler) Results(c *gin.Context) {
	id, err := parseID(c.Param("job_id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	job, err := h.jobs.ByID(c.Request.Context(), id)
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	sortBy := c.DefaultQuery("sort_by", "latest")

	resumes, err := h.resumes.Page(c.Request.Context(), job.ID, page, resultsPageSize, sortBy)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load results")
		return
	}
	total, err := h.resumes.Count(c.Request.Context(), job.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to count results")
		return
	}

	rows := make([]resumeRow, 0, len(resumes))
	for _, r := range resumes {
		rows = append(rows, resumeRow{Resume: r, FormattedDate: r.CreatedAt.Format("01-02-2006")})
	}

	sess := sessions.Default(c)
	notices := sess.Flashes()
	_ = sess.Save()

	c.HTML(http.StatusOK, "results.html", gin.H{
		"job":         job,
		"results":     rows,
		"page":        page,
		"total_pages": usecase.TotalPages(total, resultsPageSize),
		"sort_by":     sortBy,
		"notices":     notices,
	})
}

func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	resumeID, err := parseID(c.Param("resume_id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	if err := h.resumes.Delete(c.Request.Context(), resumeID); err != nil {
		c.String(http.StatusInternalServerError, "failed to delete resume")
		return
	}
	c.Redirect(http.StatusFound, "/results/"+c.Param("job_id"))
}

func (h *ResumeHandler) DeleteSelected(c *gin.Context) {
	var ids []uint
	for _, s := range c.PostFormArray("resume_ids") {
		if id, err := parseID(s); err == nil {
			ids = append(ids, id)
		}
	}
	if err := h.resumes.DeleteMany(c.Request.Context(), ids); err != nil {
		c.String(http.StatusInternalServerError, "failed to delete resumes")
		return
	}
	c.Redirect(http.StatusFound, "/results/"+c.Param("job_id"))
}

// Download serves a stored upload as an attachment.
func (h *ResumeHandler) Download(c *gin.Context) {
	name := c.Param("filename")
	path, err := h.storage.Resolve(name)
	if err != nil {
		c.String(http.StatusNotFound, "file not found")
		return
	}
	c.FileAttachment(path, name)
}
