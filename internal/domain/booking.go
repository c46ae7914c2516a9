package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
	StatusCanceled  BookingStatus = "canceled"
)

// Booking represents an appointment in the system
// A booking belongs either to a registered user (UserID set) or to a guest
// (GuestName and GuestPhone set) - exactly one of the two identities
type Booking struct {
	ID         int64
	UserID     *int64
	GuestName  *string
	GuestPhone *string
	ServiceID  int64

	// Denormalized service data for history: later price changes
	// must not retroactively alter existing bookings
	ServiceName string
	PriceCents  int64

	StartsAt time.Time
	Status   BookingStatus

	CreatedAt  time.Time
	CanceledAt *time.Time
}

// IsGuest returns true if the booking was made without an account
func (b *Booking) IsGuest() bool {
	return b.UserID == nil
}

// BlocksSlot returns true if the booking still occupies its time slot
// Canceled bookings free their slot, active and completed ones keep it
func (b *Booking) BlocksSlot() bool {
	return b.Status != StatusCanceled
}

// CanBeCanceled returns true if the booking can still be canceled
func (b *Booking) CanBeCanceled() bool {
	return b.Status == StatusActive
}

// CanBeCompleted returns true if the booking can be marked as completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusActive
}

// CountsAsRevenue returns true if the booking is included in revenue totals
func (b *Booking) CountsAsRevenue() bool {
	return b.Status == StatusActive || b.Status == StatusCompleted
}

// OwnedBy returns true if the booking belongs to the given user
// Guest bookings belong to nobody
func (b *Booking) OwnedBy(userID int64) bool {
	return b.UserID != nil && *b.UserID == userID
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	From            *time.Time     // Начало периода по startsAt (опционально)
	To              *time.Time     // Конец периода по startsAt, не включая (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeCanceled bool           // Включать ли отмененные бронирования
}
