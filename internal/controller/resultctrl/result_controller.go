package resultctrl

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mindtrace/bpdscreen/internal/dto"
	"github.com/mindtrace/bpdscreen/internal/middleware"
	"github.com/mindtrace/bpdscreen/internal/service"
	"github.com/rs/zerolog/log"
)

type ResultController struct {
	resultService    service.ResultService
	reconcileService service.ReconcileService
	reportService    service.ReportService
}

func NewResultController(resultService service.ResultService, reconcileService service.ReconcileService, reportService service.ReportService) *ResultController {
	return &ResultController{
		resultService:    resultService,
		reconcileService: reconcileService,
		reportService:    reportService,
	}
}

// entitled consults the store; anonymous subjects are never entitled.
func (c *ResultController) entitled(ctx *gin.Context) bool {
	if !ctx.GetBool(middleware.CtxAuthenticated) {
		return false
	}
	userID := ctx.GetString(middleware.CtxSubjectID)
	hasPaid, err := c.reconcileService.Entitled(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Entitlement lookup failed, gating results")
		return false
	}
	return hasPaid
}

// GetLatest godoc
// @Summary Latest result for the current subject
// @Description Severity summary is always returned; the full breakdown only when the user is entitled.
// @Tags Results
// @Produce json
// @Success 200 {object} dto.ResultSummaryDTO
// @Failure 404 {object} dto.ErrorResponse "No result yet"
// @Failure 500 {object} dto.ErrorResponse
// @Router /results/latest [get]
func (c *ResultController) GetLatest(ctx *gin.Context) {
	subjectID := ctx.GetString(middleware.CtxSubjectID)
	summary, detail, err := c.resultService.Latest(subjectID, c.entitled(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load result", Details: []string{err.Error()}})
		return
	}
	if summary == nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No completed result for this subject"})
		return
	}
	if detail != nil {
		ctx.JSON(http.StatusOK, gin.H{"summary": summary, "detail": detail})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"summary": summary})
}

// SpecialistNote godoc
// @Summary Generate a specialist note for the latest result
// @Description Entitlement-gated. Produces a clinician-facing summary of the latest result.
// @Tags Results
// @Produce json
// @Success 200 {object} dto.SpecialistNoteDTO
// @Failure 402 {object} dto.ErrorResponse "Payment required"
// @Failure 404 {object} dto.ErrorResponse "No result yet"
// @Failure 500 {object} dto.ErrorResponse
// @Router /results/latest/specialist-note [post]
func (c *ResultController) SpecialistNote(ctx *gin.Context) {
	if !c.entitled(ctx) {
		ctx.JSON(http.StatusPaymentRequired, dto.ErrorResponse{Message: "Full results require payment"})
		return
	}

	subjectID := ctx.GetString(middleware.CtxSubjectID)
	result, err := c.resultService.LatestRecord(subjectID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load result", Details: []string{err.Error()}})
		return
	}
	if result == nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No completed result for this subject"})
		return
	}

	note, source, err := c.reportService.SpecialistNote(ctx.Request.Context(), result)
	if err != nil {
		log.Error().Err(err).Str("resultID", result.ID).Msg("SpecialistNote: generation failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate specialist note"})
		return
	}
	ctx.JSON(http.StatusOK, dto.SpecialistNoteDTO{ResultID: result.ID, Note: note, Source: source})
}
