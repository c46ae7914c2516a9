package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrSlotTaken возвращается, когда выбранный слот уже занят
	// другим бронированием на момент подтверждения
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrSlotBlocked возвращается, когда слот попадает в блокировку администратора
	ErrSlotBlocked = errors.New("create_booking: slot is blocked")

	// ErrSlotInPast возвращается при попытке забронировать прошедший слот
	ErrSlotInPast = errors.New("create_booking: slot is in the past")

	// ErrInvalidTimeSlot возвращается, когда момент начала не лежит на сетке
	// расписания (не кратен шагу или вне рабочего окна)
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
