package controllers

import (
	"dushanbe-eats/pkg/resp"
	"dushanbe-eats/services"
	"dushanbe-eats/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: s}
}

// POST /api/payments/create-checkout
func (h *PaymentController) CreateCheckout(c *gin.Context) {
	var req struct {
		OrderID   uint   `json:"order_id" binding:"required"`
		OriginURL string `json:"origin_url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.CreateCheckout(c.Request.Context(), utils.CurrentUserID(c), req.OrderID, req.OriginURL)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/payments/status/:sessionId
func (h *PaymentController) Status(c *gin.Context) {
	st, err := h.Svc.CheckStatus(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, st)
}

// POST /api/webhook/payments — the collaborator's push path. The payload
// only names the session; the paid/unpaid answer comes from the
// collaborator itself, never from the request body.
func (h *PaymentController) Webhook(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	st, err := h.Svc.CheckStatus(c.Request.Context(), req.SessionID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": "ok", "payment_status": st.PaymentStatus})
}
