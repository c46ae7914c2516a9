package create_booking

import "time"

// Request модель запроса на создание бронирования
// Ровно одна идентичность: либо UserID (авторизованный клиент),
// либо GuestName + GuestPhone (гостевое бронирование)
type Request struct {
	UserID     *int64    // ID пользователя (nil для гостя)
	GuestName  *string   // Имя гостя (nil для авторизованного клиента)
	GuestPhone *string   // Телефон гостя (nil для авторизованного клиента)
	ServiceID  int64     // ID услуги
	StartsAt   time.Time // Момент начала слота
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	UserID     *int64
	GuestName  *string
	GuestPhone *string
	ServiceID  int64
	StartsAt   time.Time
	Status     string

	// Снимок данных услуги на момент бронирования
	ServiceName string
	PriceCents  int64

	CreatedAt time.Time
}
