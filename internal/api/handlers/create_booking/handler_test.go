package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/seuzara/barber-booking-service/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	req  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.req = req
	return f.resp, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func performRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	return rec
}

func TestHandle_GuestBookingCreated(t *testing.T) {
	startsAt := time.Date(2026, 3, 14, 17, 0, 0, 0, time.UTC)
	name := "Carlos Mendes"
	phone := "+55 11 98888-0101"

	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:          101,
		GuestName:   &name,
		GuestPhone:  &phone,
		ServiceID:   1,
		ServiceName: "Corte Social",
		PriceCents:  4500,
		StartsAt:    startsAt,
		Status:      "active",
		CreatedAt:   time.Now(),
	}}

	rec := performRequest(t, uc, `{
		"guestName": "Carlos Mendes",
		"guestPhone": "+55 11 98888-0101",
		"serviceId": 1,
		"startsAt": "2026-03-14T17:00:00Z"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":101`)

	require.NotNil(t, uc.req)
	assert.Nil(t, uc.req.UserID)
	assert.True(t, uc.req.StartsAt.Equal(startsAt))
}

func TestHandle_ErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"slot taken", createBooking.ErrSlotTaken, http.StatusConflict},
		{"slot blocked", createBooking.ErrSlotBlocked, http.StatusConflict},
		{"service not found", createBooking.ErrServiceNotFound, http.StatusNotFound},
		{"slot in past", createBooking.ErrSlotInPast, http.StatusBadRequest},
		{"off-grid slot", createBooking.ErrInvalidTimeSlot, http.StatusBadRequest},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal error", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performRequest(t, &fakeUseCase{err: tt.err}, `{
				"guestName": "Carlos Mendes",
				"guestPhone": "+55 11 98888-0101",
				"serviceId": 1,
				"startsAt": "2026-03-14T17:00:00Z"
			}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_MalformedStartsAt(t *testing.T) {
	rec := performRequest(t, &fakeUseCase{}, `{
		"guestName": "Carlos Mendes",
		"guestPhone": "+55 11 98888-0101",
		"serviceId": 1,
		"startsAt": "14:00"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := performRequest(t, &fakeUseCase{}, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
