package domain

import "time"

// Default schedule values
const (
	DefaultOpenHour    = 9  // 09:00
	DefaultCloseHour   = 19 // 19:00, exclusive - the closing hour is not bookable
	DefaultSlotMinutes = 30
)

// PastSlotGrace допуск при проверке "слот в прошлом"
// Слот, начавшийся меньше минуты назад, еще считается доступным,
// чтобы граница текущей минуты не мигала в выдаче
const PastSlotGrace = 60 * time.Second

// Business validation constants
const (
	MaxNameLength   = 200
	MaxPhoneLength  = 40
	MaxReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses статусы бронирований, занимающих слот
// Используются при подсчете доступности
var BlockingStatuses = []BookingStatus{
	StatusActive,
	StatusCompleted,
}

// RevenueStatuses статусы бронирований, учитываемых в выручке
var RevenueStatuses = []BookingStatus{
	StatusActive,
	StatusCompleted,
}
