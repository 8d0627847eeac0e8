package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"quicksizer/internal/adapter/http/handlers"
	"quicksizer/internal/adapter/persistence/repository"
	"quicksizer/internal/config"
	"quicksizer/internal/domain/pricing"
	"quicksizer/internal/usecase"
	"quicksizer/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	questionnaires := repository.NewQuestionnaireGormRepository(db)
	estimates := repository.NewEstimateGormRepository(db)
	log := logger.NewNop()

	return NewRouter(&config.Config{}, log, Handlers{
		Health:        handlers.NewHealthHandler(),
		Questionnaire: handlers.NewQuestionnaireHandler(usecase.NewQuestionnaireUseCase(questionnaires, log)),
		Estimate:      handlers.NewEstimateHandler(usecase.NewEstimateUseCase(questionnaires, estimates, pricing.NewEngine(), log)),
	})
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const payload = `{
	"session_id": "s-1",
	"company_name": "",
	"industry": "technology",
	"data_size": "medium",
	"developer_count": 5,
	"required_functionalities": ["etl", "analytics"],
	"deployment_preference": "cloud",
	"monthly_data_volume_gb": 100,
	"concurrent_users": 50
}`

type resultBody struct {
	Questionnaire struct {
		ID          int64   `json:"id"`
		CompanyName *string `json:"company_name"`
	} `json:"questionnaire"`
	Estimation struct {
		ID               int64   `json:"id"`
		TotalMonthlyCost float64 `json:"total_monthly_cost"`
		TotalAnnualCost  float64 `json:"total_annual_cost"`
		CreatedAt        string  `json:"created_at"`
		Recommendations  []string
	} `json:"estimation"`
}

func TestRouter_QuestionnaireToResultFlow(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/v1/questionnaires", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(r, http.MethodPost, "/v1/questionnaires", payload)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodGet, "/v1/questionnaires/1/estimate", "")
	assert.Equal(t, http.StatusNotFound, w.Code, "estimate must not exist before the first resolve")

	w = do(r, http.MethodGet, "/v1/results/s-1", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var first resultBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.Nil(t, first.Questionnaire.CompanyName)
	assert.Equal(t, 3460.0, first.Estimation.TotalMonthlyCost)
	assert.Equal(t, 37368.0, first.Estimation.TotalAnnualCost)

	w = do(r, http.MethodGet, "/v1/results/s-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var second resultBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, first.Estimation.ID, second.Estimation.ID)
	assert.Equal(t, first.Estimation.CreatedAt, second.Estimation.CreatedAt)

	w = do(r, http.MethodGet, "/v1/questionnaires/1/estimate", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/v1/questionnaires/session/s-1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/v1/questionnaires", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestRouter_NotFoundAndValidation(t *testing.T) {
	r := newTestRouter(t)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/v1/results/unknown", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/v1/questionnaires/session/unknown", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/v1/questionnaires/0/estimate", "").Code)

	w := do(r, http.MethodPost, "/v1/questionnaires", `{"session_id":"s-2","industry":"technology"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/v1/questionnaires", "")
	assert.Equal(t, "[]", w.Body.String(), "rejected questionnaires must not be stored")
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/v1/ping", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/v1/healthcheck", "").Code)
}
