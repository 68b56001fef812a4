package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pawsome-ngo/rescue-backend/internal/auth"
	"github.com/pawsome-ngo/rescue-backend/internal/config"
	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/pawsome-ngo/rescue-backend/internal/service"
	"github.com/pawsome-ngo/rescue-backend/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	auth          *mocks.MockAuthService
	incidents     *mocks.MockIncidentService
	notifications *mocks.MockNotificationService
	tokens        *auth.TokenManager
}

// newTestRouter создает Gin-роутер с мокированными сервисами и настоящим
// менеджером токенов, чтобы прогонять запросы через весь конвейер middleware.
func newTestRouter(t *testing.T) (*gin.Engine, *handlerMocks) {
	ctrl := gomock.NewController(t)
	m := &handlerMocks{
		auth:          mocks.NewMockAuthService(ctrl),
		incidents:     mocks.NewMockIncidentService(ctrl),
		notifications: mocks.NewMockNotificationService(ctrl),
		tokens:        auth.NewTokenManager("test-secret", time.Hour),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	handler := NewHandler(Deps{
		Auth:          m.auth,
		Incidents:     m.incidents,
		Notifications: m.notifications,
		Tokens:        m.tokens,
		Logger:        logger,
		Cfg:           &config.Config{},
	})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	handler.RegisterRoutes(api)
	return router, m
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// bearer выпускает валидный токен с указанными ролями
func bearer(t *testing.T, m *handlerMocks, userID int64, roles ...models.RoleName) map[string]string {
	token, err := m.tokens.GenerateToken(userID, "tester", roles)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestLogin_Success(t *testing.T) {
	router, m := newTestRouter(t)
	reqBody := LoginRequest{Username: "dana", Password: "secret"}

	m.auth.EXPECT().
		Login(gomock.Any(), "dana", "secret").
		Return("issued-token", &models.User{ID: 1, FirstName: "Dana"}, nil)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "issued-token", resp.Token)
	assert.Equal(t, int64(1), resp.User.ID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router, m := newTestRouter(t)
	reqBody := LoginRequest{Username: "dana", Password: "wrong"}

	m.auth.EXPECT().
		Login(gomock.Any(), "dana", "wrong").
		Return("", nil, service.ErrInvalidCredentials)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	router, m := newTestRouter(t)

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/auth/login", bytes.NewBufferString(`{"username": "dana"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Password' failed on the 'required' tag")
}

func TestListIncidents_RequiresToken(t *testing.T) {
	router, m := newTestRouter(t)

	m.incidents.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/incidents", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authorization token required")
}

func TestListIncidents_InvalidToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := makeRequest(router, "GET", "/api/incidents", nil, map[string]string{"Authorization": "Bearer not-a-jwt"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}

func TestListIncidents_StatusFilterUppercased(t *testing.T) {
	router, m := newTestRouter(t)

	m.incidents.EXPECT().
		ListIncidents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, status *models.IncidentStatus) ([]*models.Incident, error) {
			require.NotNil(t, status)
			assert.Equal(t, models.StatusReported, *status)
			return []*models.Incident{{ID: 10, Status: models.StatusReported}}, nil
		})

	w := makeRequest(router, "GET", "/api/incidents?status=reported", nil, bearer(t, m, 1, models.RoleMember))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []*models.Incident
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, int64(10), resp[0].ID)
}

func TestResolveIncident_ForbiddenForMember(t *testing.T) {
	router, m := newTestRouter(t)

	m.incidents.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/incidents/10/resolve", nil, bearer(t, m, 1, models.RoleMember))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient permissions")
}

func TestResolveIncident_InvalidStateMapsToConflict(t *testing.T) {
	router, m := newTestRouter(t)

	m.incidents.EXPECT().
		Resolve(gomock.Any(), int64(10)).
		Return(service.ErrInvalidState)

	w := makeRequest(router, "POST", "/api/incidents/10/resolve", nil, bearer(t, m, 1, models.RoleRescueCaptain))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestResolveIncident_Success(t *testing.T) {
	router, m := newTestRouter(t)

	m.incidents.EXPECT().Resolve(gomock.Any(), int64(10)).Return(nil)

	w := makeRequest(router, "POST", "/api/incidents/10/resolve", nil, bearer(t, m, 1, models.RoleAdmin))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResolveIncident_InvalidID(t *testing.T) {
	router, m := newTestRouter(t)

	m.incidents.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/incidents/abc/resolve", nil, bearer(t, m, 1, models.RoleAdmin))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInitiateIncident_Success(t *testing.T) {
	router, m := newTestRouter(t)

	m.incidents.EXPECT().Initiate(gomock.Any(), int64(10)).Return(nil)

	w := makeRequest(router, "PUT", "/api/incidents/10/initiate", nil, bearer(t, m, 1, models.RoleRescueCaptain))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitiateIncident_ReportedMapsToConflict(t *testing.T) {
	router, m := newTestRouter(t)

	// Инцидент еще в REPORTED - запуск выезда невозможен
	m.incidents.EXPECT().
		Initiate(gomock.Any(), int64(10)).
		Return(service.ErrInvalidState)

	w := makeRequest(router, "PUT", "/api/incidents/10/initiate", nil, bearer(t, m, 1, models.RoleRescueCaptain))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestInitiateIncident_ForbiddenForMember(t *testing.T) {
	router, m := newTestRouter(t)

	m.incidents.EXPECT().Initiate(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/incidents/10/initiate", nil, bearer(t, m, 1, models.RoleMember))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateIncidentStatus_RoutesToGuardedTransition(t *testing.T) {
	router, m := newTestRouter(t)

	m.incidents.EXPECT().Resolve(gomock.Any(), int64(10)).Return(nil)

	w := makeRequest(router, "PUT", "/api/incidents/10/status",
		bytes.NewBufferString(`{"status": "resolved"}`), bearer(t, m, 1, models.RoleRescueCaptain))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateIncidentStatus_ClosedPassesReason(t *testing.T) {
	router, m := newTestRouter(t)

	m.incidents.EXPECT().Close(gomock.Any(), int64(10), "False alarm").Return(nil)

	w := makeRequest(router, "PUT", "/api/incidents/10/status",
		bytes.NewBufferString(`{"status": "CLOSED", "reason": "False alarm"}`), bearer(t, m, 1, models.RoleRescueCaptain))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateIncidentStatus_UnknownStatus(t *testing.T) {
	router, m := newTestRouter(t)

	w := makeRequest(router, "PUT", "/api/incidents/10/status",
		bytes.NewBufferString(`{"status": "SHIPPED"}`), bearer(t, m, 1, models.RoleRescueCaptain))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown target status")
}

func TestDeleteIncident_RequiresAdmin(t *testing.T) {
	router, m := newTestRouter(t)

	m.incidents.EXPECT().DeleteIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Капитану доступно управление инцидентами, но не их удаление
	w := makeRequest(router, "DELETE", "/api/incidents/10", nil, bearer(t, m, 1, models.RoleRescueCaptain))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMarkAllNotificationsRead_ReturnsCount(t *testing.T) {
	router, m := newTestRouter(t)

	m.notifications.EXPECT().MarkAllAsRead(gomock.Any(), int64(5)).Return(3, nil)

	w := makeRequest(router, "POST", "/api/notifications/read-all", nil, bearer(t, m, 5, models.RoleMember))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp CountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Count)
}

func TestPurgeNotifications_AdminOnly(t *testing.T) {
	router, m := newTestRouter(t)

	m.notifications.EXPECT().PurgeOlderThan(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/notifications/purge", nil, bearer(t, m, 1, models.RoleMember))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPurgeNotifications_DefaultDays(t *testing.T) {
	router, m := newTestRouter(t)

	m.notifications.EXPECT().PurgeOlderThan(gomock.Any(), 30).Return(12, nil)

	w := makeRequest(router, "POST", "/api/notifications/purge", nil, bearer(t, m, 1, models.RoleAdmin))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp CountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.Count)
}

func TestPurgeNotifications_RejectsBadDays(t *testing.T) {
	router, m := newTestRouter(t)

	m.notifications.EXPECT().PurgeOlderThan(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/notifications/purge?days=0", nil, bearer(t, m, 1, models.RoleAdmin))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnexpectedServiceError_HiddenFromClient(t *testing.T) {
	router, m := newTestRouter(t)

	m.incidents.EXPECT().
		Resolve(gomock.Any(), int64(10)).
		Return(errors.New("connection refused"))

	w := makeRequest(router, "POST", "/api/incidents/10/resolve", nil, bearer(t, m, 1, models.RoleAdmin))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestHealthCheck_Public(t *testing.T) {
	router, _ := newTestRouter(t)

	w := makeRequest(router, "GET", "/api/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
