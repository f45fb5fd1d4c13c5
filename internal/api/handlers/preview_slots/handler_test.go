package preview_slots

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/slotgen"
	previewSlots "github.com/m04kA/SMC-SlotService/internal/usecase/preview_slots"
	"github.com/m04kA/SMC-SlotService/pkg/logger"
)

type fakeUseCase struct {
	got  *previewSlots.Request
	resp *previewSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *previewSlots.Request) (*previewSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(t *testing.T, uc PreviewSlotsUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := mux.NewRouter()
	r.HandleFunc("/therapists/{therapistId}/slots/preview", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/therapists/7/slots/preview", strings.NewReader(body)))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	uc := &fakeUseCase{resp: &previewSlots.Response{
		Outcome: slotgen.OutcomeOK,
		Slots: []*domain.Slot{{
			TherapistID: 7,
			SlotDate:    time.Date(2026, time.October, 21, 0, 0, 0, 0, time.Local),
			StartTime:   "08:00",
			EndTime:     "09:00",
			Status:      domain.SlotStatusAvailable,
		}},
	}}

	rec := serve(t, uc, `{"durationMinutes":60,"startTime":"8am","weekdays":["Wed"],"baseDate":"2026-10-19"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), uc.got.TherapistID)
	assert.Equal(t, 60, *uc.got.Schedule.DurationMinutes)
	assert.Equal(t, []string{"Wed"}, uc.got.Schedule.Weekdays)
	assert.JSONEq(t, `{"outcome":"ok","slots":[{"therapistId":7,"date":"2026-10-21","startTime":"08:00","endTime":"09:00","status":"available"}]}`,
		rec.Body.String())
}

func TestHandler_Handle_EmptyBodyUsesTemplate(t *testing.T) {
	uc := &fakeUseCase{resp: &previewSlots.Response{Outcome: slotgen.OutcomeEmptyRange}}

	rec := serve(t, uc, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.got.Schedule.DurationMinutes)
	assert.JSONEq(t, `{"outcome":"empty_range","slots":[]}`, rec.Body.String())
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "non numeric duration", body: `{"durationMinutes":"sixty"}`, status: http.StatusBadRequest},
		{name: "bad base date", body: `{"baseDate":"next monday"}`, status: http.StatusBadRequest},
		{name: "invalid config", body: `{}`, err: fmt.Errorf("%w: gap", previewSlots.ErrInvalidInput), status: http.StatusBadRequest},
		{name: "internal", body: `{}`, err: fmt.Errorf("%w: db", previewSlots.ErrInternal), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
