package get_rental_grid

import "time"

// Request модель запроса сетки аренды
type Request struct {
	FacilityKey string      // Ключ площадки
	Dates       []time.Time // Даты запроса (минимум одна)
	Sport       int         // Код вида спорта платформы (0 = без фильтра)
}

// Response сетка аренды по датам
type Response struct {
	FacilityKey  string
	FacilityName string
	Days         []DayGrid
}

// DayGrid доступность полей на одну дату
type DayGrid struct {
	Date      string // "2026-02-15"
	Resources []ResourceGrid
}

// ResourceGrid доступные блоки одного поля, собранные из смежных ячеек сетки
type ResourceGrid struct {
	ResourceID       int64
	ResourceName     string // пустая строка, если поле не входит в известный список ресурсов
	Blocks           []Block
	TotalOpenMinutes int
}

// Block непрерывный доступный блок
type Block struct {
	Start           string // "HH:MM"
	End             string // "HH:MM"
	DurationMinutes int
}
