package controller

import (
	"econ_quiz_backend/internal/service"
	"econ_quiz_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

// CreateSession godoc
// @Summary Start a quiz session
// @Description Draws questions at the caller's current difficulty level; correct answers are not included
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	creation, err := c.SessionService.CreateSession(claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "user not found")
		case errors.Is(err, util.ErrNoQuestionsAvailable):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, creation)
}

type SubmitSessionRequest struct {
	Answers   []int `json:"answers" binding:"required"`
	TimeSpent int   `json:"timeSpent" binding:"gte=0"`
}

// SubmitSession godoc
// @Summary Submit answers for a session
// @Description Scores the session, updates topic progress and recalculates the difficulty level
// @Tags sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sessionId path string true "session id"
// @Param body body SubmitSessionRequest true "answers"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/sessions/{sessionId}/submit [post]
func (c *SessionController) SubmitSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.SessionService.SubmitSession(claims.UserID, ctx.Param("sessionId"), req.Answers, req.TimeSpent)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx, "session not found")
		case errors.Is(err, util.ErrSessionSubmitted):
			util.BadRequest(ctx, err.Error())
		case errors.As(err, &validationErr):
			ctx.JSON(400, util.Response{
				Code:    400,
				Message: "validation failed",
				Data:    gin.H{"violations": validationErr.Violations},
			})
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// GetUserSessions godoc
// @Summary List the caller's recent sessions
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "max sessions" default(10)
// @Success 200 {object} util.Response
// @Router /api/sessions [get]
func (c *SessionController) GetUserSessions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	limit := util.ParseIntDefault(ctx.Query("limit"), 10)
	sessions, err := c.SessionService.UserSessions(claims.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sessions)
}
