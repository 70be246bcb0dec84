package get_availability

import "time"

// Request модель запроса на расчёт свободного времени
type Request struct {
	FacilityKey        string    // Ключ площадки ("wall-street", "crown-heights")
	Date               time.Time // Дата расчёта (без времени)
	FieldFilter        string    // Фильтр по имени поля, частичное совпадение (опционально)
	MinDurationMinutes *int      // Минимальная длительность блока (nil = значение по умолчанию, 0 = любые блоки)
	Persist            bool      // Сохранять ли результат в историю
}

// Response модель ответа с расчётом по каждому полю площадки
type Response struct {
	FacilityKey        string
	FacilityName       string
	BookingURL         string
	Date               time.Time
	MinDurationMinutes int
	Resources          []ResourceAvailability
}

// ResourceAvailability расчёт свободного времени одного поля
type ResourceAvailability struct {
	ResourceID       int64
	ResourceName     string
	WindowOpen       string // "HH:MM", пустая строка если часы на день неизвестны
	WindowClose      string // "HH:MM"
	BookedCount      int
	Blocks           []Block
	TotalFreeMinutes int
	SnapshotID       *int64 // ID сохранённого снапшота, если Persist = true
}

// Block свободный блок времени
type Block struct {
	Start           string // "HH:MM"
	End             string // "HH:MM"
	DurationMinutes int
}
