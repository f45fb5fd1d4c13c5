package generate_slots

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	slotsModels "github.com/m04kA/SMC-SlotService/internal/service/slots/models"
	"github.com/m04kA/SMC-SlotService/internal/slotgen"
	generateSlots "github.com/m04kA/SMC-SlotService/internal/usecase/generate_slots"
	"github.com/m04kA/SMC-SlotService/pkg/logger"
)

type fakeUseCase struct {
	got  *generateSlots.Request
	resp *generateSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *generateSlots.Request) (*generateSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(t *testing.T, uc GenerateSlotsUseCase, body, key string) *httptest.ResponseRecorder {
	t.Helper()
	r := mux.NewRouter()
	r.HandleFunc("/therapists/{therapistId}/slots/generate", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/therapists/7/slots/generate", strings.NewReader(body))
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	uc := &fakeUseCase{resp: &generateSlots.Response{
		Outcome: slotgen.OutcomeOK,
		Created: []slotsModels.SlotResponse{{TherapistID: 7, Date: "2026-10-21", StartTime: "08:00", EndTime: "09:00", Status: "available"}},
	}}

	rec := serve(t, uc, `{"durationMinutes":60,"gapMinutes":60,"startTime":"8am","endTime":"8pm"}`, " gen-1 ")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "gen-1", uc.got.IdempotencyKey)
	assert.Empty(t, rec.Header().Get(ReplayedHeader))
	assert.JSONEq(t, `{"outcome":"ok","created":[{"therapistId":7,"date":"2026-10-21","startTime":"08:00","endTime":"09:00","status":"available"}],"ignored":[]}`,
		rec.Body.String())
}

func TestHandler_Handle_Replayed(t *testing.T) {
	uc := &fakeUseCase{resp: &generateSlots.Response{Outcome: slotgen.OutcomeOK, Replayed: true}}

	rec := serve(t, uc, "", "gen-1")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "true", rec.Header().Get(ReplayedHeader))
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "bad json", body: `{"weekdays":"Mon"}`, status: http.StatusBadRequest},
		{name: "invalid config", err: fmt.Errorf("%w: weekday", generateSlots.ErrInvalidInput), status: http.StatusBadRequest},
		{name: "invalid time", err: generateSlots.ErrInvalidTime, status: http.StatusBadRequest},
		{name: "empty range", err: generateSlots.ErrEmptyRange, status: http.StatusBadRequest},
		{name: "too many", err: generateSlots.ErrTooManySlots, status: http.StatusBadRequest},
		{name: "therapist missing", err: generateSlots.ErrTherapistNotFound, status: http.StatusNotFound},
		{name: "therapist inactive", err: generateSlots.ErrTherapistInactive, status: http.StatusUnprocessableEntity},
		{name: "key reused", err: generateSlots.ErrIdempotencyKeyReused, status: http.StatusUnprocessableEntity},
		{name: "internal", err: generateSlots.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tt.err}, tt.body, "")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
