package interfaces

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-screener/domain"
	"resume-screener/repository"
)

// JobHandler serves the dashboard and job CRUD routes.
type JobHandler struct {
	jobs *repository.JobRepository
}

func NewJobHandler(router *gin.Engine, jobs *repository.JobRepository) *JobHandler {
	h := &JobHandler{jobs: jobs}

	router.GET("/dashboard", RequireLogin(), h.Dashboard)
	router.POST("/add-job", RequireLogin(), h.AddJob)
	router.GET("/edit-job/:job_id", RequireLogin(), h.EditJobPage)
	router.POST("/edit-job/:job_id", RequireLogin(), h.EditJob)
	router.POST("/delete-job/:job_id", RequireLogin(), h.DeleteJob)

	return h
}

// Dashboard lists the current user's jobs, newest first.
func (h *JobHandler) Dashboard(c *gin.Context) {
	jobs, err := h.jobs.ByUser(c.Request.Context(), c.GetString(sessionKeyUID))
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load jobs")
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{"jobs": jobs})
}

func (h *JobHandler) AddJob(c *gin.Context) {
	job := domain.Job{
		UserID:      c.GetString(sessionKeyUID),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	if err := h.jobs.Create(c.Request.Context(), &job); err != nil {
		c.String(http.StatusInternalServerError, "failed to create job")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *JobHandler) EditJobPage(c *gin.Context) {
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
	c.HTML(http.StatusOK, "edit_job.html", gin.H{"job": job})
}

func (h *JobHandler) EditJob(c *gin.Context) {
	id, err := parseID(c.Param("job_id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	if err := h.jobs.Update(c.Request.Context(), id, c.PostForm("title"), c.PostForm("description")); err != nil {
		c.String(http.StatusInternalServerError, "failed to update job")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

// DeleteJob removes the job. Its resumes are not cascaded.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, err := parseID(c.Param("job_id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	if err := h.jobs.Delete(c.Request.Context(), id); err != nil {
		c.String(http.StatusInternalServerError, "failed to delete job")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	return uint(id), err
}
