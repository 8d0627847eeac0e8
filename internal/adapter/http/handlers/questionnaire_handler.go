package handlers

import (
	"net/http"

	request "quicksizer/internal/adapter/http/dto/request"
	response "quicksizer/internal/adapter/http/dto/response"
	"quicksizer/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuestionnaireHandler handles HTTP requests for questionnaires.
type QuestionnaireHandler struct {
	usecase usecase.IQuestionnaireUseCase
}

func NewQuestionnaireHandler(uc usecase.IQuestionnaireUseCase) *QuestionnaireHandler {
	return &QuestionnaireHandler{usecase: uc}
}

// CreateQuestionnaire godoc
// @Summary      Submit a questionnaire
// @Description  Stores the requirements of one session. A session can submit only once.
// @Tags         questionnaires
// @Accept       json
// @Produce      json
// @Param        body  body      request.QuestionnaireRequest  true  "Questionnaire"
// @Success      201   {object}  response.QuestionnaireResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /v1/questionnaires [post]
func (h *QuestionnaireHandler) CreateQuestionnaire(c *gin.Context) {
	var payload request.QuestionnaireRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	q, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromQuestionnaire(q))
}

// ListQuestionnaires godoc
// @Summary      List questionnaires
// @Description  Every stored questionnaire, most recent first.
// @Tags         questionnaires
// @Produce      json
// @Success      200  {array}   response.QuestionnaireResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /v1/questionnaires [get]
func (h *QuestionnaireHandler) ListQuestionnaires(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuestionnaires(items))
}

// GetQuestionnaireBySession godoc
// @Summary      Get a questionnaire by session
// @Tags         questionnaires
// @Produce      json
// @Param        session_id  path      string  true  "Session id"
// @Success      200         {object}  response.QuestionnaireResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      503         {object}  pkg.HTTPError
// @Router       /v1/questionnaires/session/{session_id} [get]
func (h *QuestionnaireHandler) GetQuestionnaireBySession(c *gin.Context) {
	q, err := h.usecase.GetBySessionID(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if q == nil {
		writeAppError(c, errQuestionnaireMissing)
		return
	}
	c.JSON(http.StatusOK, response.FromQuestionnaire(*q))
}
