package create_booking

import (
	"fmt"
	"time"

	createBooking "github.com/seuzara/barber-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	GuestName  *string `json:"guestName,omitempty"`
	GuestPhone *string `json:"guestPhone,omitempty"`
	ServiceID  int64   `json:"serviceId"`
	StartsAt   string  `json:"startsAt"` // RFC 3339
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	UserID      *int64  `json:"userId,omitempty"`
	GuestName   *string `json:"guestName,omitempty"`
	GuestPhone  *string `json:"guestPhone,omitempty"`
	ServiceID   int64   `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	PriceCents  int64   `json:"priceCents"`
	StartsAt    string  `json:"startsAt"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// userID берется из токена аутентификации, не из тела запроса.
func (r *CreateBookingRequest) ToUseCaseRequest(userID *int64) (*createBooking.Request, error) {
	startsAt, err := time.Parse(time.RFC3339, r.StartsAt)
	if err != nil {
		return nil, fmt.Errorf("parse starts_at: %w", err)
	}

	return &createBooking.Request{
		UserID:     userID,
		GuestName:  r.GuestName,
		GuestPhone: r.GuestPhone,
		ServiceID:  r.ServiceID,
		StartsAt:   startsAt,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		GuestName:   resp.GuestName,
		GuestPhone:  resp.GuestPhone,
		ServiceID:   resp.ServiceID,
		ServiceName: resp.ServiceName,
		PriceCents:  resp.PriceCents,
		StartsAt:    resp.StartsAt.Format(time.RFC3339),
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
