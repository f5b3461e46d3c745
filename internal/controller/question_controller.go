package controller

import (
	"econ_quiz_backend/internal/model"
	"econ_quiz_backend/internal/service"
	"econ_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// GetQuestions godoc
// @Summary List questions
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param difficulty query int false "difficulty level 1-3"
// @Param topic query string false "topic label"
// @Param limit query int false "max questions" default(10)
// @Success 200 {object} util.Response
// @Router /api/questions [get]
func (c *QuestionController) GetQuestions(ctx *gin.Context) {
	difficulty := util.ParseIntDefault(ctx.Query("difficulty"), 0)
	limit := util.ParseIntDefault(ctx.Query("limit"), 10)

	questions, err := c.QuestionService.List(difficulty, ctx.Query("topic"), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// GetTopics godoc
// @Summary List distinct topics
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/questions/topics [get]
func (c *QuestionController) GetTopics(ctx *gin.Context) {
	topics, err := c.QuestionService.Topics()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, topics)
}

type CreateQuestionRequest struct {
	Text            string   `json:"text" binding:"required"`
	Options         []string `json:"options" binding:"required"`
	CorrectAnswer   int      `json:"correctAnswer"`
	Topic           string   `json:"topic" binding:"required"`
	DifficultyLevel int      `json:"difficultyLevel" binding:"required"`
	Explanation     string   `json:"explanation"`
}

// CreateQuestion godoc
// @Summary Author a new question
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateQuestionRequest true "question"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question := &model.Question{
		Text:            req.Text,
		Options:         model.StringSlice(req.Options),
		CorrectAnswer:   req.CorrectAnswer,
		Topic:           req.Topic,
		DifficultyLevel: req.DifficultyLevel,
		Explanation:     req.Explanation,
	}

	if violations := c.QuestionService.Create(question); len(violations) > 0 {
		ctx.JSON(400, util.Response{
			Code:    400,
			Message: "validation failed",
			Data:    gin.H{"violations": violations},
		})
		return
	}

	util.Created(ctx, question)
}

// GetSessionPreview godoc
// @Summary Preview an adaptive question draw
// @Description Returns an answer-stripped draw without creating a session
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param difficultyLevel query int false "difficulty level 1-3" default(2)
// @Param count query int false "question count" default(10)
// @Success 200 {object} util.Response
// @Router /api/questions/session [get]
func (c *QuestionController) GetSessionPreview(ctx *gin.Context) {
	level := util.ParseIntDefault(ctx.Query("difficultyLevel"), model.LevelIntermediate)
	count := util.ParseIntDefault(ctx.Query("count"), 10)

	if level < model.LevelBeginner || level > model.LevelAdvanced {
		util.BadRequest(ctx, "difficultyLevel must be 1, 2 or 3")
		return
	}
	if count < 1 {
		util.BadRequest(ctx, "count must be at least 1")
		return
	}

	preview, err := c.QuestionService.PreviewSession(level, count)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, preview)
}
