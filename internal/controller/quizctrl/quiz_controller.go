package quizctrl

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mindtrace/bpdscreen/internal/dto"
	"github.com/mindtrace/bpdscreen/internal/middleware"
	"github.com/mindtrace/bpdscreen/internal/quiz"
	"github.com/mindtrace/bpdscreen/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

func (c *QuizController) subject(ctx *gin.Context) string {
	return ctx.GetString(middleware.CtxSubjectID)
}

func (c *QuizController) respondState(ctx *gin.Context, state *dto.SessionStateDTO, err error) {
	if err != nil {
		var ve *quiz.ErrValidation
		if errors.As(err, &ve) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: ve.Reason})
			return
		}
		log.Error().Err(err).Msg("Quiz transition failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Quiz operation failed", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// GetQuestions godoc
// @Summary List the question bank
// @Description Returns the ordered question list for the inventory variant.
// @Tags Quiz
// @Produce json
// @Param variant query string false "Quiz variant" default(bpd)
// @Success 200 {array} dto.QuestionDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /quiz/questions [get]
func (c *QuizController) GetQuestions(ctx *gin.Context) {
	variant := ctx.DefaultQuery("variant", quiz.VariantBPD)
	questions, err := c.quizService.Questions(variant)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetState godoc
// @Summary Current quiz session state
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.SessionStateDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /quiz/session [get]
func (c *QuizController) GetState(ctx *gin.Context) {
	state, err := c.quizService.State(c.subject(ctx))
	c.respondState(ctx, state, err)
}

// Answer godoc
// @Summary Record an answer
// @Description Sets the option for one question and returns the recomputed scores.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param answer body dto.AnswerRequestDTO true "Question and option indexes"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Out-of-range index or completed session"
// @Router /quiz/session/answer [post]
func (c *QuizController) Answer(ctx *gin.Context) {
	var req dto.AnswerRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	state, err := c.quizService.Answer(c.subject(ctx), req.QuestionIndex, req.OptionIndex)
	c.respondState(ctx, state, err)
}

// Next godoc
// @Summary Advance to the next question
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.SessionStateDTO
// @Router /quiz/session/next [post]
func (c *QuizController) Next(ctx *gin.Context) {
	state, err := c.quizService.Next(c.subject(ctx))
	c.respondState(ctx, state, err)
}

// Previous godoc
// @Summary Go back to the previous question
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.SessionStateDTO
// @Router /quiz/session/previous [post]
func (c *QuizController) Previous(ctx *gin.Context) {
	state, err := c.quizService.Previous(c.subject(ctx))
	c.respondState(ctx, state, err)
}

// Complete godoc
// @Summary Complete the quiz and persist the result
// @Description Freezes the session. Partial completion is allowed; unanswered questions score zero.
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Session already completed"
// @Failure 500 {object} dto.ErrorResponse "Result could not be saved; the session remains retryable"
// @Router /quiz/session/complete [post]
func (c *QuizController) Complete(ctx *gin.Context) {
	state, err := c.quizService.Complete(c.subject(ctx))
	c.respondState(ctx, state, err)
}

// Reset godoc
// @Summary Reset the quiz session
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.SessionStateDTO
// @Router /quiz/session/reset [post]
func (c *QuizController) Reset(ctx *gin.Context) {
	state, err := c.quizService.Reset(c.subject(ctx))
	c.respondState(ctx, state, err)
}
