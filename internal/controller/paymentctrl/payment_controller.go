package paymentctrl

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mindtrace/bpdscreen/internal/dto"
	"github.com/mindtrace/bpdscreen/internal/middleware"
	"github.com/mindtrace/bpdscreen/internal/payment"
	"github.com/mindtrace/bpdscreen/internal/service"
	"github.com/rs/zerolog/log"
)

type PaymentController struct {
	paymentService   service.PaymentService
	reconcileService service.ReconcileService
}

func NewPaymentController(paymentService service.PaymentService, reconcileService service.ReconcileService) *PaymentController {
	return &PaymentController{paymentService: paymentService, reconcileService: reconcileService}
}

// Checkout godoc
// @Summary Start a payment
// @Description Creates a pending subscription and returns the signed gateway request fields.
// @Tags Payment
// @Produce json
// @Success 200 {object} dto.CheckoutResponseDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /payment/checkout [post]
func (c *PaymentController) Checkout(ctx *gin.Context) {
	userID := ctx.GetString(middleware.CtxSubjectID)
	resp, err := c.paymentService.Checkout(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to start checkout", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Callback godoc
// @Summary Reconcile the gateway redirect
// @Description Consumes the redirect query parameters (any subset, any historical alias) plus the
// @Description client-cached initiation timestamp and decides entitlement. Re-running on an already
// @Description entitled user is a no-op.
// @Tags Payment
// @Produce json
// @Param initiated_at query int false "Client-cached checkout start, unix milliseconds (advisory)"
// @Success 200 {object} dto.ReconcileResponseDTO
// @Failure 402 {object} dto.ErrorResponse "Could not confirm payment"
// @Failure 401 {object} dto.ErrorResponse
// @Router /payment/callback [get]
func (c *PaymentController) Callback(ctx *gin.Context) {
	userID := ctx.GetString(middleware.CtxSubjectID)

	signals := payment.SignalsFromQuery(ctx.Request.URL.Query())
	if raw := ctx.Query("initiated_at"); raw != "" {
		millis, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Warn().Str("initiated_at", raw).Msg("Callback: ignoring unparsable initiation timestamp")
		} else {
			signals.InitiatedAt = time.UnixMilli(millis)
		}
	}

	outcome, err := c.reconcileService.Reconcile(userID, signals)
	if err != nil {
		if errors.Is(err, service.ErrPaymentInconclusive) {
			ctx.JSON(http.StatusPaymentRequired, dto.ErrorResponse{Message: "Could not confirm payment. Please retry checkout."})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Payment reconciliation failed", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.ReconcileResponseDTO{Entitled: outcome.Granted(), Outcome: string(outcome)})
}

// GetEntitlement godoc
// @Summary Current entitlement flag
// @Tags Payment
// @Produce json
// @Success 200 {object} dto.EntitlementDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /payment/entitlement [get]
func (c *PaymentController) GetEntitlement(ctx *gin.Context) {
	userID := ctx.GetString(middleware.CtxSubjectID)
	hasPaid, err := c.reconcileService.Entitled(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load entitlement", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.EntitlementDTO{HasPaid: hasPaid})
}
