package handlers

import (
	"net/http"
	"strconv"

	response "quicksizer/internal/adapter/http/dto/response"
	"quicksizer/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimateHandler handles HTTP requests for cost estimates.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// GetEstimateByQuestionnaire godoc
// @Summary      Get the stored estimate of a questionnaire
// @Description  Never computes; returns 404 until the session's result was resolved once.
// @Tags         estimates
// @Produce      json
// @Param        id   path      int  true  "Questionnaire id"
// @Success      200  {object}  response.EstimateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /v1/questionnaires/{id}/estimate [get]
func (h *EstimateHandler) GetEstimateByQuestionnaire(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeAppError(c, errInvalidQuestionnaire)
		return
	}

	e, err := h.usecase.GetByQuestionnaireID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if e == nil {
		writeAppError(c, errEstimateMissing)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(*e))
}

// GetResult godoc
// @Summary      Resolve the cost result of a session
// @Description  Computes and stores the estimate on first call; later calls return the stored one.
// @Tags         results
// @Produce      json
// @Param        session_id  path      string  true  "Session id"
// @Success      200         {object}  response.CostResultResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      503         {object}  pkg.HTTPError
// @Router       /v1/results/{session_id} [get]
func (h *EstimateHandler) GetResult(c *gin.Context) {
	res, err := h.usecase.Resolve(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if res == nil {
		writeAppError(c, errResultMissing)
		return
	}
	c.JSON(http.StatusOK, response.FromCostResult(*res))
}
