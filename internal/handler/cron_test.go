package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"linkpulse/internal/mocks"
	"linkpulse/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCronRouter(h *CronHandler) *gin.Engine {
	router := gin.New()
	router.POST("/api/cron/daily-analytics", h.DailyAnalytics)
	return router
}

func TestCronHandler_DailyAnalytics(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setupMock  func(m *mocks.MockAggregationRunner)
		expectCode int
	}{
		{
			name:  "defaults to yesterday",
			query: "",
			setupMock: func(m *mocks.MockAggregationRunner) {
				m.EXPECT().Run(gomock.Any(), 1, false).Return(&model.JobSummary{Success: true, ProcessedDays: 1}, nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name:  "days and force",
			query: "?days=7&force=true",
			setupMock: func(m *mocks.MockAggregationRunner) {
				m.EXPECT().Run(gomock.Any(), 7, true).Return(&model.JobSummary{Success: true, ProcessedDays: 7}, nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name:  "force needs literal true",
			query: "?force=1",
			setupMock: func(m *mocks.MockAggregationRunner) {
				m.EXPECT().Run(gomock.Any(), 1, false).Return(&model.JobSummary{}, nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name:       "invalid days",
			query:      "?days=week",
			setupMock:  func(m *mocks.MockAggregationRunner) {},
			expectCode: http.StatusBadRequest,
		},
		{
			name:  "aborted run",
			query: "?days=3",
			setupMock: func(m *mocks.MockAggregationRunner) {
				m.EXPECT().Run(gomock.Any(), 3, false).Return(&model.JobSummary{}, context.Canceled)
			},
			expectCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRunner := mocks.NewMockAggregationRunner(ctrl)
			tt.setupMock(mockRunner)

			w := httptest.NewRecorder()
			newTestCronRouter(NewCronHandler(mockRunner)).
				ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/cron/daily-analytics"+tt.query, nil))

			assert.Equal(t, tt.expectCode, w.Code)
			if tt.expectCode == http.StatusOK {
				var resp Response
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, 0, resp.Code)
			}
		})
	}
}
