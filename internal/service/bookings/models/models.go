package models

import (
	"errors"
	"time"

	"github.com/seuzara/barber-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Actor действующее лицо запроса (из токена аутентификации)
type Actor struct {
	UserID  int64
	IsAdmin bool
}

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64
	Status *string
}

// GetAdminBookingsRequest запрос администратора на список бронирований
type GetAdminBookingsRequest struct {
	Date            *time.Time // Фильтр по дню (опционально)
	Status          *string    // Фильтр по статусу (опционально)
	IncludeCanceled bool       // Включать ли отмененные бронирования
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64   `json:"id"`
	UserID      *int64  `json:"userId,omitempty"`
	GuestName   *string `json:"guestName,omitempty"`
	GuestPhone  *string `json:"guestPhone,omitempty"`
	ServiceID   int64   `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	PriceCents  int64   `json:"priceCents"`
	StartsAt    string  `json:"startsAt"` // RFC 3339
	Status      string  `json:"status"`

	CanceledAt *string `json:"canceledAt,omitempty"` // RFC 3339

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		GuestName:   b.GuestName,
		GuestPhone:  b.GuestPhone,
		ServiceID:   b.ServiceID,
		ServiceName: b.ServiceName,
		PriceCents:  b.PriceCents,
		StartsAt:    b.StartsAt.Format(time.RFC3339),
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
	}

	if b.CanceledAt != nil {
		canceledStr := b.CanceledAt.Format(time.RFC3339)
		resp.CanceledAt = &canceledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	switch s {
	case domain.StatusActive, domain.StatusCompleted, domain.StatusCanceled:
		return s, nil
	}

	return "", ErrInvalidStatus
}
