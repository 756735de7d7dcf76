package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/handler/dto"
	hmocks "github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/handler/mocks"
	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/middleware"
	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/router"
)

const testSecret = "test-secret"

func setupRouter(t *testing.T) (*hmocks.MockSlotSvc, *hmocks.MockInterviewSvc, http.Handler) {
	t.Helper()
	slotSvc := hmocks.NewMockSlotSvc(t)
	interviewSvc := hmocks.NewMockInterviewSvc(t)

	h := NewHandler(slotSvc, interviewSvc)
	r := router.InitRouter("test", h, middleware.NewAuth(testSecret))

	return slotSvc, interviewSvc, r
}

func signToken(t *testing.T, userID string, role domain.Role) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// --- Slots ---

func TestHandler_CreateSlot_Success(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	slot := &domain.Slot{
		ID:        uuid.New().String(),
		OwnerID:   "mentor-1",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Capacity:  2,
		CreatedAt: time.Now().UTC(),
	}

	slotSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(slot, nil)

	body, _ := json.Marshal(dto.CreateSlotRequest{
		StartTime: start.Format(time.RFC3339),
		EndTime:   start.Add(time.Hour).Format(time.RFC3339),
		Capacity:  2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/interviews/slots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signToken(t, "mentor-1", domain.RoleMentor))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var resp dto.SlotResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, slot.ID, resp.ID)
	assert.Equal(t, "open", resp.Status)
}

func TestHandler_CreateSlot_Unauthenticated(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/interviews/slots", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
}

func TestHandler_CreateSlot_StudentForbidden(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/interviews/slots", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signToken(t, "student-1", domain.RoleStudent))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateSlot_InvalidTime(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"start_time":"not-a-date","end_time":"also-not-a-date"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/interviews/slots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signToken(t, "mentor-1", domain.RoleMentor))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListAvailableSlots_Success(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	avail := &domain.Availability{
		TotalSlots: 1,
		Days: []domain.DayAvailability{
			{
				Date:  "2026-03-10",
				Slots: []*domain.Slot{{ID: uuid.New().String(), StartTime: start, EndTime: start.Add(time.Hour), Capacity: 1}},
			},
		},
	}

	slotSvc.EXPECT().ListAvailable(mock.Anything, mock.Anything, mock.Anything).Return(avail, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/interviews/slots/available?from=2026-03-09&to=2026-03-12", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, 1, resp.TotalSlots)
	require.Contains(t, resp.SlotsByDate, "2026-03-10")
	assert.Len(t, resp.SlotsByDate["2026-03-10"], 1)
}

func TestHandler_ListAvailableSlots_BadRange(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/interviews/slots/available?from=garbage", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListMySlots_Success(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	slots := []*domain.Slot{
		{ID: uuid.New().String(), OwnerID: "mentor-1", Capacity: 1},
		{ID: uuid.New().String(), OwnerID: "mentor-1", Capacity: 2, BookedCount: 2},
	}
	slotSvc.EXPECT().ListByOwner(mock.Anything, "mentor-1").Return(slots, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/interviews/slots/my-slots", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "mentor-1", domain.RoleMentor))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var resp []dto.SlotResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "open", resp[0].Status)
	assert.Equal(t, "full", resp[1].Status)
}

func TestHandler_ListMySlots_Unauthenticated(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/interviews/slots/my-slots", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_DeleteSlot_HasBookings(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	slotID := uuid.New().String()
	slotSvc.EXPECT().Delete(mock.Anything, slotID, "mentor-1").Return(domain.ErrSlotHasBookings)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/interviews/slots/"+slotID, nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "mentor-1", domain.RoleMentor))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DeleteSlot_NotOwner(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	slotID := uuid.New().String()
	slotSvc.EXPECT().Delete(mock.Anything, slotID, "mentor-2").Return(domain.ErrNotSlotOwner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/interviews/slots/"+slotID, nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "mentor-2", domain.RoleMentor))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Interviews ---

func TestHandler_ScheduleInterview_Success(t *testing.T) {
	_, interviewSvc, r := setupRouter(t)

	appID := uuid.New().String()
	slotID := uuid.New().String()
	iv := &domain.Interview{
		ID:            uuid.New().String(),
		ApplicationID: appID,
		SlotID:        slotID,
		Status:        domain.InterviewStatusScheduled,
		Outcome:       domain.OutcomePending,
	}

	interviewSvc.EXPECT().Schedule(mock.Anything, appID, slotID).Return(iv, nil)

	body := []byte(`{"application_id":"` + appID + `","slot_id":"` + slotID + `"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/interviews/schedule", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var resp dto.InterviewResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, iv.ID, resp.ID)
	assert.Equal(t, "scheduled", resp.Status)
}

func TestHandler_ScheduleInterview_MissingFields(t *testing.T) {
	_, _, r := setupRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"missing slot", `{"application_id":"` + uuid.New().String() + `"}`},
		{"missing application", `{"slot_id":"` + uuid.New().String() + `"}`},
		{"not json", `notjson`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/interviews/schedule", bytes.NewReader([]byte(tt.body)))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			env := decodeEnvelope(t, w)
			assert.False(t, env.Success)
			assert.Equal(t, "Application ID and Slot ID are required", env.Message)
		})
	}
}

func TestHandler_ScheduleInterview_SlotFull(t *testing.T) {
	_, interviewSvc, r := setupRouter(t)

	appID := uuid.New().String()
	slotID := uuid.New().String()
	interviewSvc.EXPECT().Schedule(mock.Anything, appID, slotID).Return(nil, domain.ErrSlotFull)

	body := []byte(`{"application_id":"` + appID + `","slot_id":"` + slotID + `"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/interviews/schedule", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ScheduleInterview_AlreadyScheduled(t *testing.T) {
	_, interviewSvc, r := setupRouter(t)

	appID := uuid.New().String()
	slotID := uuid.New().String()
	interviewSvc.EXPECT().Schedule(mock.Anything, appID, slotID).Return(nil, domain.ErrAlreadyScheduled)

	body := []byte(`{"application_id":"` + appID + `","slot_id":"` + slotID + `"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/interviews/schedule", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ScheduleInterview_ApplicationNotFound(t *testing.T) {
	_, interviewSvc, r := setupRouter(t)

	appID := uuid.New().String()
	slotID := uuid.New().String()
	interviewSvc.EXPECT().Schedule(mock.Anything, appID, slotID).Return(nil, domain.ErrApplicationNotFound)

	body := []byte(`{"application_id":"` + appID + `","slot_id":"` + slotID + `"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/interviews/schedule", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ScheduleInterview_StoreTimeout(t *testing.T) {
	_, interviewSvc, r := setupRouter(t)

	appID := uuid.New().String()
	slotID := uuid.New().String()
	interviewSvc.EXPECT().Schedule(mock.Anything, appID, slotID).Return(nil, domain.ErrStoreTimeout)

	body := []byte(`{"application_id":"` + appID + `","slot_id":"` + slotID + `"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/interviews/schedule", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "service temporarily unavailable", env.Message)
}

func TestHandler_GetInterviewByApplication_Success(t *testing.T) {
	_, interviewSvc, r := setupRouter(t)

	appID := uuid.New().String()
	iv := &domain.Interview{ID: uuid.New().String(), ApplicationID: appID, Status: domain.InterviewStatusScheduled}
	interviewSvc.EXPECT().GetByApplication(mock.Anything, appID).Return(iv, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/interviews/application/"+appID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetInterviewByApplication_NotFound(t *testing.T) {
	_, interviewSvc, r := setupRouter(t)

	appID := uuid.New().String()
	interviewSvc.EXPECT().GetByApplication(mock.Anything, appID).Return(nil, domain.ErrInterviewNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/interviews/application/"+appID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ReviewInterview_Success(t *testing.T) {
	_, interviewSvc, r := setupRouter(t)

	ivID := uuid.New().String()
	iv := &domain.Interview{
		ID:      ivID,
		Status:  domain.InterviewStatusCompleted,
		Outcome: domain.OutcomePass,
	}
	interviewSvc.EXPECT().Review(mock.Anything, ivID, domain.OutcomePass, "solid").Return(iv, nil)

	body := []byte(`{"outcome":"pass","notes":"solid"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/interviews/"+ivID+"/review", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signToken(t, "admin-1", domain.RoleAdmin))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var resp dto.InterviewResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "pass", resp.Outcome)
}

func TestHandler_ReviewInterview_MentorForbidden(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"outcome":"pass"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/interviews/"+uuid.New().String()+"/review", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signToken(t, "mentor-1", domain.RoleMentor))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CancelInterview_Success(t *testing.T) {
	_, interviewSvc, r := setupRouter(t)

	ivID := uuid.New().String()
	iv := &domain.Interview{ID: ivID, Status: domain.InterviewStatusCancelled}
	interviewSvc.EXPECT().Cancel(mock.Anything, ivID).Return(iv, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/interviews/"+ivID+"/cancel", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "mentor-1", domain.RoleMentor))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelInterview_Completed(t *testing.T) {
	_, interviewSvc, r := setupRouter(t)

	ivID := uuid.New().String()
	interviewSvc.EXPECT().Cancel(mock.Anything, ivID).Return(nil, domain.ErrInterviewNotScheduled)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/interviews/"+ivID+"/cancel", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "mentor-1", domain.RoleMentor))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetInterview_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/interviews/not-a-uuid", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "admin-1", domain.RoleAdmin))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
