package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// Default values for availability calculation
const (
	// DefaultMinBlockMinutes минимальная длительность свободного блока по умолчанию
	DefaultMinBlockMinutes = 60

	// RentalGridStepMinutes шаг сетки аренды у букинг-платформы
	RentalGridStepMinutes = 30
)
