package v1

import (
	"net/http"
	"strconv"

	"siteseekers-backend/internal/domain"
	"siteseekers-backend/pkg/apperror"
	"siteseekers-backend/pkg/format"

	"github.com/gin-gonic/gin"
)

type PremiumHandler struct {
	premiumUC domain.PremiumUsecase
}

// NewPremiumHandler registers the premium subscription routes
func NewPremiumHandler(r *gin.RouterGroup, premiumUC domain.PremiumUsecase) {
	handler := &PremiumHandler{premiumUC: premiumUC}

	premium := r.Group("/premium")
	{
		premium.GET("/:contractorId", handler.Status)
		premium.GET("/check/:contractorId", handler.Check)
		premium.POST("/subscribe", handler.Subscribe)
		premium.POST("/cancel/:contractorId", handler.Cancel)
		premium.POST("/process-payment", handler.ProcessPayment)
	}
}

// Status godoc
// @Summary      Get subscription status
// @Description  Current premium status with coverage dates, derived from the payment ledger
// @Tags         premium
// @Produce      json
// @Param        contractorId  path      int  true  "Contractor ID"
// @Success      200           {object}  domain.PremiumStatusView
// @Failure      400           {object}  response.ErrorBody
// @Router       /premium/{contractorId} [get]
func (h *PremiumHandler) Status(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("contractorId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid contractor ID"))
		return
	}

	view, err := h.premiumUC.Status(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Check godoc
// @Summary      Check premium entitlement
// @Description  Boolean gate used by premium-only features
// @Tags         premium
// @Produce      json
// @Param        contractorId  path      int  true  "Contractor ID"
// @Success      200           {object}  map[string]bool
// @Failure      400           {object}  response.ErrorBody
// @Router       /premium/check/{contractorId} [get]
func (h *PremiumHandler) Check(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("contractorId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid contractor ID"))
		return
	}

	active, err := h.premiumUC.IsPremiumActive(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_premium": active})
}

type SubscribeRequest struct {
	ContractorID int64 `json:"contractor_id" binding:"required"`
	Months       int   `json:"months"`
}

// Subscribe godoc
// @Summary      Subscribe to premium
// @Description  Records a paid subscription period starting today; months defaults to 1
// @Tags         premium
// @Accept       json
// @Produce      json
// @Param        body  body      SubscribeRequest  true  "Subscription request"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  response.ErrorBody
// @Router       /premium/subscribe [post]
func (h *PremiumHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	premiumID, paymentID, err := h.premiumUC.Subscribe(c.Request.Context(), req.ContractorID, req.Months)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Subscription activated",
		"premium_id": premiumID,
		"payment_id": paymentID,
	})
}

// Cancel godoc
// @Summary      Cancel premium
// @Description  Ends coverage as of today; the payment history is preserved
// @Tags         premium
// @Produce      json
// @Param        contractorId  path      int  true  "Contractor ID"
// @Success      200           {object}  map[string]interface{}
// @Failure      400           {object}  response.ErrorBody
// @Router       /premium/cancel/{contractorId} [post]
func (h *PremiumHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("contractorId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid contractor ID"))
		return
	}

	if err := h.premiumUC.Cancel(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscription cancelled"})
}

type ProcessPaymentRequest struct {
	ContractorID int64 `json:"contractor_id" binding:"required"`
}

// ProcessPayment godoc
// @Summary      Charge one billing cycle
// @Description  Runs the fixed monthly charge in a single transaction and returns the receipt
// @Tags         premium
// @Accept       json
// @Produce      json
// @Param        body  body      ProcessPaymentRequest  true  "Payment request"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  response.ErrorBody
// @Router       /premium/process-payment [post]
func (h *PremiumHandler) ProcessPayment(c *gin.Context) {
	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	receipt, err := h.premiumUC.ProcessPayment(c.Request.Context(), req.ContractorID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":            "Payment processed successfully",
		"payment_id":         receipt.PaymentID,
		"premium_id":         receipt.PremiumID,
		"amount":             format.Money(receipt.Amount),
		"subscription_start": format.LongDate(receipt.SubscriptionStart),
		"subscription_end":   format.LongDate(receipt.SubscriptionEnd),
	})
}
