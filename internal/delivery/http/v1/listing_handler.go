package v1

import (
	"net/http"
	"strconv"

	"siteseekers-backend/internal/domain"
	"siteseekers-backend/pkg/apperror"
	"siteseekers-backend/pkg/format"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	jobUC         domain.JobUsecase
	applicationUC domain.ApplicationUsecase
}

// NewListingHandler registers the listing and application routes
func NewListingHandler(r *gin.RouterGroup, jobUC domain.JobUsecase, applicationUC domain.ApplicationUsecase) {
	handler := &ListingHandler{jobUC: jobUC, applicationUC: applicationUC}

	listings := r.Group("/listings")
	{
		listings.GET("", handler.List)
		listings.POST("", handler.Create)
		listings.GET("/job/:job_id", handler.GetJob)
		listings.PUT("/close/:job_id", handler.Close)
		listings.PUT("/reopen/:job_id", handler.Reopen)
		listings.POST("/check-application", handler.CheckApplication)
		listings.POST("/apply", handler.Apply)
		listings.GET("/applicants/:job_id", handler.ListApplicants)
		listings.GET("/applied-jobs/:contractor_id", handler.ListAppliedJobs)
	}
}

type CreateListingRequest struct {
	ClientID     int64   `json:"client_id"`
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Location     string  `json:"location"`
	MinSalary    float64 `json:"min_salary" binding:"required,gt=0"`
	MaxSalary    float64 `json:"max_salary" binding:"required,gt=0,gtefield=MinSalary"`
	ActualSalary float64 `json:"actual_salary"`
	RateType     string  `json:"rate_type" binding:"required,oneof=hourly fixed yearly"`
	Status       string  `json:"status" binding:"omitempty,oneof=Open Closed"`
}

// listingItem is the list response row: numeric salaries, long-form date
type listingItem struct {
	JobID        int64   `json:"job_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	DatePosted   string  `json:"date_posted"`
	Status       string  `json:"status"`
	MinSalary    float64 `json:"min_salary"`
	MaxSalary    float64 `json:"max_salary"`
	ActualSalary float64 `json:"actual_salary"`
	RateType     string  `json:"rate_type"`
	ClientName   *string `json:"client_name"`
}

// jobDetail is the single-job response: grouped salary strings for display
type jobDetail struct {
	JobID        int64  `json:"job_id"`
	ClientID     int64  `json:"client_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	DatePosted   string `json:"date_posted"`
	Status       string `json:"status"`
	MinSalary    string `json:"min_salary"`
	MaxSalary    string `json:"max_salary"`
	ActualSalary string `json:"actual_salary"`
	RateType     string `json:"rate_type"`
}

// List godoc
// @Summary      List job listings
// @Description  Get every listing (open and closed) with the client name, newest first
// @Tags         listings
// @Produce      json
// @Success      200  {array}   listingItem
// @Failure      500  {object}  response.ErrorBody
// @Router       /listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListListings(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	items := make([]listingItem, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, listingItem{
			JobID:        j.ID,
			Title:        j.Title,
			Description:  j.Description,
			Location:     j.Location,
			DatePosted:   format.LongDate(j.DatePosted),
			Status:       j.Status,
			MinSalary:    j.MinSalary,
			MaxSalary:    j.MaxSalary,
			ActualSalary: j.ActualSalary,
			RateType:     j.RateType,
			ClientName:   j.ClientName,
		})
	}
	c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary      Create a job listing
// @Description  Create a new listing; status defaults to Open
// @Tags         listings
// @Accept       json
// @Produce      json
// @Param        listing  body      CreateListingRequest  true  "Listing JSON"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  response.ErrorBody
// @Router       /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if req.ClientID == 0 {
		c.Error(apperror.BadRequest("Client ID is required"))
		return
	}

	job := &domain.Job{
		ClientID:     req.ClientID,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		MinSalary:    req.MinSalary,
		MaxSalary:    req.MaxSalary,
		ActualSalary: req.ActualSalary,
		RateType:     req.RateType,
		Status:       req.Status,
	}

	if err := h.jobUC.CreateListing(c.Request.Context(), job); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Job listing created successfully",
		"job_id":  job.ID,
	})
}

// GetJob godoc
// @Summary      Get listing details
// @Tags         listings
// @Produce      json
// @Param        job_id  path      int  true  "Job ID"
// @Success      200     {object}  jobDetail
// @Failure      404     {object}  response.ErrorBody
// @Router       /listings/job/{job_id} [get]
func (h *ListingHandler) GetJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, jobDetail{
		JobID:        job.ID,
		ClientID:     job.ClientID,
		Title:        job.Title,
		Description:  job.Description,
		Location:     job.Location,
		DatePosted:   format.LongDate(job.DatePosted),
		Status:       job.Status,
		MinSalary:    format.Grouped(job.MinSalary),
		MaxSalary:    format.Grouped(job.MaxSalary),
		ActualSalary: format.Grouped(job.ActualSalary),
		RateType:     job.RateType,
	})
}

// Close godoc
// @Summary      Close a listing
// @Description  Set the listing status to Closed; re-closing is a no-op success
// @Tags         listings
// @Produce      json
// @Param        job_id  path      int  true  "Job ID"
// @Success      200     {object}  map[string]interface{}
// @Failure      404     {object}  response.ErrorBody
// @Router       /listings/close/{job_id} [put]
func (h *ListingHandler) Close(c *gin.Context) {
	h.setStatus(c, domain.JobStatusClosed)
}

// Reopen godoc
// @Summary      Reopen a listing
// @Tags         listings
// @Produce      json
// @Param        job_id  path      int  true  "Job ID"
// @Success      200     {object}  map[string]interface{}
// @Failure      404     {object}  response.ErrorBody
// @Router       /listings/reopen/{job_id} [put]
func (h *ListingHandler) Reopen(c *gin.Context) {
	h.setStatus(c, domain.JobStatusOpen)
}

func (h *ListingHandler) setStatus(c *gin.Context, status string) {
	id, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	if err := h.jobUC.SetStatus(c.Request.Context(), id, status); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}

type CheckApplicationRequest struct {
	ContractorID int64 `json:"contractor_id" binding:"required"`
	JobID        int64 `json:"job_id" binding:"required"`
}

// CheckApplication godoc
// @Summary      Check for an existing application
// @Description  Advisory duplicate check used by the apply form
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      CheckApplicationRequest  true  "Pair to check"
// @Success      200   {object}  map[string]bool
// @Failure      500   {object}  response.ErrorBody
// @Router       /listings/check-application [post]
func (h *ListingHandler) CheckApplication(c *gin.Context) {
	var req CheckApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	applied, err := h.applicationUC.HasApplied(c.Request.Context(), req.ContractorID, req.JobID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": applied})
}

type ApplyRequest struct {
	ContractorID    int64  `json:"contractor_id" binding:"required"`
	JobID           int64  `json:"job_id" binding:"required"`
	TellAnswer      string `json:"tell_answer" binding:"required"`
	FitAnswer       string `json:"fit_answer" binding:"required"`
	AmbitiousAnswer string `json:"ambitious_answer" binding:"required"`
	Location        string `json:"location"`
}

// Apply godoc
// @Summary      Submit a job application
// @Description  Records a Pending application; duplicates are rejected with 409
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      ApplyRequest  true  "Application data"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  response.ErrorBody
// @Failure      409   {object}  response.ErrorBody
// @Router       /listings/apply [post]
func (h *ListingHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app := &domain.Application{
		ContractorID:    req.ContractorID,
		JobID:           req.JobID,
		TellAnswer:      req.TellAnswer,
		FitAnswer:       req.FitAnswer,
		AmbitiousAnswer: req.AmbitiousAnswer,
		Location:        req.Location,
	}

	if err := h.applicationUC.Apply(c.Request.Context(), app); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Job application submitted successfully",
		"application_id": app.ID,
	})
}

type applicantItem struct {
	ApplicationID   int64   `json:"application_id"`
	ContractorID    int64   `json:"contractor_id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	PhoneNumber     *string `json:"phone_number"`
	Bio             *string `json:"bio"`
	Status          string  `json:"status"`
	TellAnswer      string  `json:"tell_answer"`
	FitAnswer       string  `json:"fit_answer"`
	AmbitiousAnswer string  `json:"ambitious_answer"`
	Location        string  `json:"location"`
	DateApplied     string  `json:"date_applied"`
}

// ListApplicants godoc
// @Summary      List applicants for a job
// @Description  Applications joined with contractor identity and profile contact details
// @Tags         applications
// @Produce      json
// @Param        job_id  path      int  true  "Job ID"
// @Success      200     {array}   applicantItem
// @Failure      404     {object}  response.ErrorBody
// @Router       /listings/applicants/{job_id} [get]
func (h *ListingHandler) ListApplicants(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	applicants, err := h.applicationUC.ListApplicantsForJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	items := make([]applicantItem, 0, len(applicants))
	for _, a := range applicants {
		items = append(items, applicantItem{
			ApplicationID:   a.ApplicationID,
			ContractorID:    a.ContractorID,
			Name:            a.Name,
			Email:           a.Email,
			PhoneNumber:     a.PhoneNumber,
			Bio:             a.Bio,
			Status:          a.Status,
			TellAnswer:      a.TellAnswer,
			FitAnswer:       a.FitAnswer,
			AmbitiousAnswer: a.AmbitiousAnswer,
			Location:        a.Location,
			DateApplied:     format.LongDate(a.DateApplied),
		})
	}
	c.JSON(http.StatusOK, items)
}

// appliedJobItem formats salaries as grouped two-decimal strings, the way
// the contractor dashboard renders them
type appliedJobItem struct {
	JobID             int64   `json:"job_id"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Location          string  `json:"location"`
	DatePosted        string  `json:"date_posted"`
	Status            string  `json:"status"`
	MinSalary         string  `json:"min_salary"`
	MaxSalary         string  `json:"max_salary"`
	ActualSalary      string  `json:"actual_salary"`
	RateType          string  `json:"rate_type"`
	ClientName        *string `json:"client_name"`
	ApplicationStatus string  `json:"application_status"`
}

// ListAppliedJobs godoc
// @Summary      List a contractor's applications
// @Description  Jobs the contractor has applied to, with the application status
// @Tags         applications
// @Produce      json
// @Param        contractor_id  path      int  true  "Contractor ID"
// @Success      200            {array}   appliedJobItem
// @Failure      500            {object}  response.ErrorBody
// @Router       /listings/applied-jobs/{contractor_id} [get]
func (h *ListingHandler) ListAppliedJobs(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("contractor_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid contractor ID"))
		return
	}

	jobs, err := h.applicationUC.ListAppliedJobs(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	items := make([]appliedJobItem, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, appliedJobItem{
			JobID:             j.ID,
			Title:             j.Title,
			Description:       j.Description,
			Location:          j.Location,
			DatePosted:        format.LongDate(j.DatePosted),
			Status:            j.Status,
			MinSalary:         format.Money(j.MinSalary),
			MaxSalary:         format.Money(j.MaxSalary),
			ActualSalary:      format.Money(j.ActualSalary),
			RateType:          j.RateType,
			ClientName:        j.ClientName,
			ApplicationStatus: j.ApplicationStatus,
		})
	}
	c.JSON(http.StatusOK, items)
}
