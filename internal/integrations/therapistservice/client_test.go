package therapistservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/pkg/logger"
)

func newClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, logger.NewNop())
}

func TestClient_GetTherapist(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/therapists/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"name":"Anna","is_active":true}`))
	})

	therapist, err := client.GetTherapist(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), therapist.ID)
	assert.Equal(t, "Anna", therapist.Name)
	assert.True(t, therapist.IsActive)
}

func TestClient_GetTherapist_NotFound(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetTherapistWithGracefulDegradation(context.Background(), 7)

	assert.ErrorIs(t, err, ErrTherapistNotFound)
}

func TestClient_GetTherapist_Degraded(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "broken body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"id":`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, tt.handler)

			_, err := client.GetTherapistWithGracefulDegradation(context.Background(), 7)

			assert.ErrorIs(t, err, ErrServiceDegraded)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 100*time.Millisecond, logger.NewNop())

	_, err := client.GetTherapist(context.Background(), 7)

	assert.ErrorIs(t, err, ErrInternal)
}
