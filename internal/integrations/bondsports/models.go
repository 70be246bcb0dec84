package bondsports

// defaultSlotTime подставляется вместо отсутствующего времени в записи слота
// Соглашение платформы: отсутствующий ключ трактуется как полночь
const defaultSlotTime = "00:00"

// Facility модель площадки (venue) из BondSports
type Facility struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
	Address  string `json:"address"`
}

// Resource модель ресурса (поля/пространства) из BondSports
type Resource struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	ResourceType  string         `json:"resourceType"`
	Status        string         `json:"status"`
	Description   string         `json:"description"`
	ActivityTimes []ActivityTime `json:"activityTimes"`
}

// ActivityTime операционные часы ресурса на один день недели
// DayOfWeek - внутренний код платформы (см. weekday.go), наружу не отдается
type ActivityTime struct {
	DayOfWeek             int     `json:"dayOfWeek"`
	Open                  string  `json:"open"`  // "HH:MM:SS"
	Close                 string  `json:"close"` // "HH:MM:SS"
	AvailabilityStartDate *string `json:"availabilityStartDate,omitempty"`
	AvailabilityEndDate   *string `json:"availabilityEndDate,omitempty"`
}

// Slot забронированный слот из BondSports
type Slot struct {
	ID        int64  `json:"id"`
	SpaceID   int64  `json:"spaceId"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Start возвращает время начала, подставляя полночь при отсутствии значения
func (s Slot) Start() string {
	if s.StartTime == "" {
		return defaultSlotTime
	}
	return s.StartTime
}

// End возвращает время конца, подставляя полночь при отсутствии значения
func (s Slot) End() string {
	if s.EndTime == "" {
		return defaultSlotTime
	}
	return s.EndTime
}

// GridSlot ячейка сетки аренды из check-availability
type GridSlot struct {
	ParentID   int64  `json:"parentId"`
	ParentType string `json:"parentType"`
	DayOfWeek  int    `json:"dayOfWeek"`
	Open       string `json:"open"`  // "HH:MM:SS"
	Close      string `json:"close"` // "HH:MM:SS"
	IsClosed   bool   `json:"isClosed"`
}

// Package пакет аренды ресурса с ценой
type Package struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration"`
}

// Credentials неизменяемый набор учетных данных после логина
// Передается явно в каждый защищенный вызов клиента; клиент сам
// никакого состояния аутентификации не хранит
type Credentials struct {
	AccessToken  string
	IDToken      string
	Username     string
	RefreshToken string

	// SessionToken сырой токен сессии для SSO-аккаунтов,
	// отправляется как Authorization: Bearer
	SessionToken string
}

// TokenCredentials создает учетные данные из готового токена сессии
func TokenCredentials(token string) *Credentials {
	return &Credentials{SessionToken: token}
}

// ErrorResponse модель ошибки от BondSports
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Platform string `json:"platform"`
}

type loginResponse struct {
	Credentials struct {
		AccessToken  string `json:"accessToken"`
		UserIDToken  string `json:"userIdToken"`
		Username     string `json:"username"`
		RefreshToken string `json:"refreshToken"`
	} `json:"credentials"`
}

type facilityEnvelope struct {
	Data Facility `json:"data"`
}

type resourceEnvelope struct {
	Data Resource `json:"data"`
}

type resourceListEnvelope struct {
	Data []Resource `json:"data"`
}

type slotListEnvelope struct {
	Data []Slot `json:"data"`
}

type packageListEnvelope struct {
	Data []struct {
		Package Package `json:"package"`
	} `json:"data"`
}

type gridEnvelope struct {
	Data map[string][]GridSlot `json:"data"`
}

type checkAvailabilityRequest struct {
	Days  []string `json:"days"`
	Sport int      `json:"sport,omitempty"`
}
