package get_available_slots

import (
	"time"

	"github.com/seuzara/barber-booking-service/internal/domain"
	getAvailableSlots "github.com/seuzara/barber-booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string   `json:"date"`  // "2026-03-14"
	Slots []string `json:"slots"` // RFC 3339, в хронологическом порядке
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.Format(time.RFC3339))
	}

	return &AvailableSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
