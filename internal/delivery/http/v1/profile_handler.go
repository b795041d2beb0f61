package v1

import (
	"net/http"
	"strconv"

	"siteseekers-backend/internal/domain"
	"siteseekers-backend/pkg/apperror"
	"siteseekers-backend/pkg/format"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	jobUC     domain.JobUsecase
}

// NewProfileHandler registers the contractor profile and client account routes
func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase, jobUC domain.JobUsecase) {
	handler := &ProfileHandler{profileUC: profileUC, jobUC: jobUC}

	profile := r.Group("/profile")
	{
		profile.POST("/create", handler.Create)
		profile.GET("/skills/:contractor_id", handler.GetSkills)
		profile.PUT("/skills/:contractor_id", handler.UpdateSkills)
		profile.GET("/experiences/:contractor_id", handler.GetExperiences)
		profile.PUT("/experiences/:contractor_id", handler.UpdateExperiences)
		profile.GET("/listings/:client_id", handler.ClientListings)
		profile.GET("/client/:client_id", handler.GetClient)
		profile.PUT("/client/:client_id", handler.UpdateClient)
		// static segments above take priority over the param match
		profile.GET("/:contractor_id", handler.Get)
		profile.PUT("/:contractor_id", handler.Update)
	}
}

type CreateProfileRequest struct {
	ContractorID int64   `json:"contractor_id" binding:"required"`
	Bio          string  `json:"bio"`
	PhoneNumber  *string `json:"phone_number"`
	RoleStatus   string  `json:"role_status"`
	Education    *string `json:"education"`
}

// Create godoc
// @Summary      Create a contractor profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      CreateProfileRequest  true  "Profile data"
// @Success      201   {object}  domain.Profile
// @Failure      400   {object}  response.ErrorBody
// @Router       /profile/create [post]
func (h *ProfileHandler) Create(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.Profile{
		ContractorID: req.ContractorID,
		Bio:          req.Bio,
		PhoneNumber:  req.PhoneNumber,
		RoleStatus:   req.RoleStatus,
		Education:    req.Education,
	}

	if err := h.profileUC.CreateProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// Get godoc
// @Summary      Get a contractor profile
// @Description  Returns the profile, creating a default one on first read
// @Tags         profile
// @Produce      json
// @Param        contractor_id  path      int  true  "Contractor ID"
// @Success      200            {object}  domain.Profile
// @Failure      404            {object}  response.ErrorBody
// @Router       /profile/{contractor_id} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := h.contractorID(c)
	if !ok {
		return
	}

	profile, err := h.profileUC.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Update godoc
// @Summary      Update a contractor profile
// @Description  Partial update; omitted fields keep their stored values
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        contractor_id  path      int                   true  "Contractor ID"
// @Param        body           body      domain.ProfileUpdate  true  "Fields to change"
// @Success      200            {object}  domain.Profile
// @Failure      404            {object}  response.ErrorBody
// @Router       /profile/{contractor_id} [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	id, ok := h.contractorID(c)
	if !ok {
		return
	}

	var patch domain.ProfileUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.UpdateProfile(c.Request.Context(), id, &patch)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetSkills godoc
// @Summary      Get a contractor's skills
// @Tags         profile
// @Produce      json
// @Param        contractor_id  path      int  true  "Contractor ID"
// @Success      200            {object}  domain.SkillSet
// @Failure      404            {object}  response.ErrorBody
// @Router       /profile/skills/{contractor_id} [get]
func (h *ProfileHandler) GetSkills(c *gin.Context) {
	id, ok := h.contractorID(c)
	if !ok {
		return
	}

	skills, err := h.profileUC.GetSkills(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

type UpdateSkillsRequest struct {
	Skills []domain.Skill `json:"skills"`
}

// UpdateSkills godoc
// @Summary      Replace a contractor's skills
// @Description  The submitted list replaces the stored one; blank names are dropped
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        contractor_id  path      int                  true  "Contractor ID"
// @Param        body           body      UpdateSkillsRequest  true  "Full skill list"
// @Success      200            {object}  domain.SkillSet
// @Failure      404            {object}  response.ErrorBody
// @Router       /profile/skills/{contractor_id} [put]
func (h *ProfileHandler) UpdateSkills(c *gin.Context) {
	id, ok := h.contractorID(c)
	if !ok {
		return
	}

	var req UpdateSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skills, err := h.profileUC.UpdateSkills(c.Request.Context(), id, req.Skills)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

// GetExperiences godoc
// @Summary      Get a contractor's work history
// @Tags         profile
// @Produce      json
// @Param        contractor_id  path      int  true  "Contractor ID"
// @Success      200            {array}   domain.Experience
// @Failure      404            {object}  response.ErrorBody
// @Router       /profile/experiences/{contractor_id} [get]
func (h *ProfileHandler) GetExperiences(c *gin.Context) {
	id, ok := h.contractorID(c)
	if !ok {
		return
	}

	experiences, err := h.profileUC.GetExperiences(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, experiences)
}

type UpdateExperiencesRequest struct {
	Experiences []domain.Experience `json:"experiences"`
}

// UpdateExperiences godoc
// @Summary      Replace a contractor's work history
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        contractor_id  path      int                       true  "Contractor ID"
// @Param        body           body      UpdateExperiencesRequest  true  "Full experience list"
// @Success      200            {array}   domain.Experience
// @Failure      404            {object}  response.ErrorBody
// @Router       /profile/experiences/{contractor_id} [put]
func (h *ProfileHandler) UpdateExperiences(c *gin.Context) {
	id, ok := h.contractorID(c)
	if !ok {
		return
	}

	var req UpdateExperiencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	experiences, err := h.profileUC.UpdateExperiences(c.Request.Context(), id, req.Experiences)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, experiences)
}

// ClientListings godoc
// @Summary      List a client's own postings
// @Tags         profile
// @Produce      json
// @Param        client_id  path      int  true  "Client ID"
// @Success      200        {array}   listingItem
// @Failure      400        {object}  response.ErrorBody
// @Router       /profile/listings/{client_id} [get]
func (h *ProfileHandler) ClientListings(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("client_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid client ID"))
		return
	}

	jobs, err := h.jobUC.ListByClient(c.Request.Context(), id)
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
		})
	}
	c.JSON(http.StatusOK, items)
}

// GetClient godoc
// @Summary      Get a client account card
// @Tags         profile
// @Produce      json
// @Param        client_id  path      int  true  "Client ID"
// @Success      200        {object}  domain.ClientInfo
// @Failure      404        {object}  response.ErrorBody
// @Router       /profile/client/{client_id} [get]
func (h *ProfileHandler) GetClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("client_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid client ID"))
		return
	}

	info, err := h.profileUC.GetClient(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, info)
}

type UpdateClientRequest struct {
	Name     string `json:"name"`
	Company  string `json:"company"`
	Location string `json:"location"`
	IsHiring bool   `json:"isHiring"`
}

// UpdateClient godoc
// @Summary      Update a client account card
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        client_id  path      int                  true  "Client ID"
// @Param        body       body      UpdateClientRequest  true  "Client data"
// @Success      200        {object}  domain.ClientInfo
// @Failure      404        {object}  response.ErrorBody
// @Router       /profile/client/{client_id} [put]
func (h *ProfileHandler) UpdateClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("client_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid client ID"))
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	info := &domain.ClientInfo{
		ClientID: id,
		Name:     req.Name,
		Company:  req.Company,
		Location: req.Location,
		IsHiring: req.IsHiring,
	}

	updated, err := h.profileUC.UpdateClient(c.Request.Context(), info)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ProfileHandler) contractorID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("contractor_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid contractor ID"))
		return 0, false
	}
	return id, true
}
