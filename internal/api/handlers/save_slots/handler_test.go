package save_slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/service/slots"
	"github.com/m04kA/SMC-SlotService/internal/service/slots/models"
	"github.com/m04kA/SMC-SlotService/pkg/logger"
)

type fakeService struct {
	got []*domain.Slot
	err error
}

func (f *fakeService) SaveBatch(_ context.Context, _ int64, batch []*domain.Slot) (*models.SaveSlotsResponse, error) {
	f.got = batch
	if f.err != nil {
		return nil, f.err
	}
	return &models.SaveSlotsResponse{
		Created: models.FromDomainSlots(batch[:1]),
		Ignored: models.FromDomainSlots(batch[1:]),
	}, nil
}

func serve(t *testing.T, svc SlotService, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := mux.NewRouter()
	r.HandleFunc("/therapists/{therapistId}/slots", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{}
	body := `{"slots":[
		{"date":"2026-10-21","startTime":"08:00","endTime":"09:00"},
		{"slotDate":"2026-10-21","startTime":"8:30am","endTime":"9:30","status":"blocked"}
	]}`

	rec := serve(t, svc, "/therapists/7/slots", body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.got, 2)
	assert.Equal(t, "08:30", svc.got[1].StartTime.String())
	assert.Equal(t, domain.SlotStatusBlocked, svc.got[1].Status)

	var resp models.SaveSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Created, 1)
	assert.Len(t, resp.Ignored, 1)
	assert.Equal(t, "2026-10-21", resp.Created[0].Date)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		err    error
		status int
	}{
		{name: "bad therapist id", path: "/therapists/x/slots", body: `{"slots":[]}`, status: http.StatusBadRequest},
		{name: "bad json", path: "/therapists/7/slots", body: `{"slots":`, status: http.StatusBadRequest},
		{name: "bad date", path: "/therapists/7/slots", body: `{"slots":[{"date":"21.10.2026","startTime":"08:00","endTime":"09:00"}]}`, status: http.StatusBadRequest},
		{name: "bad time", path: "/therapists/7/slots", body: `{"slots":[{"date":"2026-10-21","startTime":"8 o'clock","endTime":"09:00"}]}`, status: http.StatusBadRequest},
		{
			name:   "service validation",
			path:   "/therapists/7/slots",
			body:   `{"slots":[{"date":"2026-10-21","startTime":"08:00","endTime":"09:00","status":"archived"}]}`,
			err:    fmt.Errorf("%w: slot #0", slots.ErrInvalidInput),
			status: http.StatusBadRequest,
		},
		{
			name:   "storage failure",
			path:   "/therapists/7/slots",
			body:   `{"slots":[{"date":"2026-10-21","startTime":"08:00","endTime":"09:00"}]}`,
			err:    fmt.Errorf("%w: boom", slots.ErrInternal),
			status: http.StatusInternalServerError,
		},
		{
			name:   "unexpected error",
			path:   "/therapists/7/slots",
			body:   `{"slots":[{"date":"2026-10-21","startTime":"08:00","endTime":"09:00"}]}`,
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeService{err: tt.err}, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
