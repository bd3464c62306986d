package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ConsultantID int64     // ID консультанта
	MemberID     int64     // ID участника, бронирующего слот
	SlotID       int64     // ID слота из каталога
	Date         time.Time // Календарная дата бронирования (без времени)
	Notes        *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64     // ID созданного бронирования
	ConsultantID int64     // ID консультанта
	MemberID     int64     // ID участника
	SlotID       int64     // ID слота
	BookingDate  time.Time // Дата бронирования
	Status       string    // Статус бронирования (всегда pending при создании)
	Notes        *string   // Заметки

	// Данные слота для ответа клиенту
	SlotStartTime types.TimeString
	SlotEndTime   types.TimeString

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
