package routes

import (
	"quicksizer/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuestionnaires = "/questionnaires"
	PathResults        = "/results"
)

func addQuestionnaireRoutes(rg *gin.RouterGroup, qh *handlers.QuestionnaireHandler, eh *handlers.EstimateHandler) {
	questionnaires := rg.Group(PathQuestionnaires)
	{
		questionnaires.POST("", qh.CreateQuestionnaire)
		questionnaires.GET("", qh.ListQuestionnaires)
		questionnaires.GET("/session/:session_id", qh.GetQuestionnaireBySession)
		questionnaires.GET("/:id/estimate", eh.GetEstimateByQuestionnaire)
	}
}

func addResultRoutes(rg *gin.RouterGroup, eh *handlers.EstimateHandler) {
	rg.GET(PathResults+"/:session_id", eh.GetResult)
}
