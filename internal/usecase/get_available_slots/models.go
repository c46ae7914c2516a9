package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  time.Time   // Дата, на которую запрашивались слоты
	Slots []time.Time // Доступные слоты в хронологическом порядке
}
