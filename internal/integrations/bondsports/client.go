package bondsports

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL адрес API букинг-платформы
const DefaultBaseURL = "https://api.bondsports.co"

// userAgent платформа отклоняет запросы без браузерного User-Agent
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для записи метрик вызовов платформы
type MetricsRecorder interface {
	ObserveVendorRequest(endpoint, status string, duration time.Duration)
}

// Client клиент для работы с API BondSports
// Учетные данные в клиенте не хранятся - защищенные методы принимают
// их явно, см. Credentials
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder // может быть nil
}

// NewClient создает новый экземпляр клиента BondSports
// metrics может быть nil, если сбор метрик отключен
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics MetricsRecorder) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// Login аутентифицируется на платформе и возвращает учетные данные
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	payload := loginRequest{
		Email:    email,
		Password: password,
		Platform: "consumer",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode login payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setCommonHeaders(req)

	resp, err := c.do("auth_login", req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusBadRequest:
		return nil, ErrAuthFailed
	default:
		return nil, unexpectedStatus(resp)
	}

	var data loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode login response: %v", ErrInvalidResponse, err)
	}

	if data.Credentials.AccessToken == "" {
		return nil, fmt.Errorf("%w: login response carries no access token", ErrInvalidResponse)
	}

	return &Credentials{
		AccessToken:  data.Credentials.AccessToken,
		IDToken:      data.Credentials.UserIDToken,
		Username:     data.Credentials.Username,
		RefreshToken: data.Credentials.RefreshToken,
	}, nil
}

// GetFacility получает данные площадки со списком пространств
// Публичный эндпоинт, аутентификация не требуется
func (c *Client) GetFacility(ctx context.Context, facilityID int64) (*Facility, error) {
	u := fmt.Sprintf("%s/v1/venues/%d", c.baseURL, facilityID)

	var envelope facilityEnvelope
	if err := c.getJSON(ctx, "get_facility", u, nil, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Data, nil
}

// GetFacilityResources получает все ресурсы (поля) площадки с операционными часами
// Публичный эндпоинт, аутентификация не требуется
func (c *Client) GetFacilityResources(ctx context.Context, orgID, facilityID int64) ([]Resource, error) {
	u := fmt.Sprintf("%s/v4/resources/organization/%d/facility/%d/resources", c.baseURL, orgID, facilityID)

	params := url.Values{}
	params.Set("resourceTypes", "space")
	params.Set("includeActivityTimes", "true")
	params.Set("includeResourceMetadata", "true")
	params.Set("includeFacilities", "true")

	var envelope resourceListEnvelope
	if err := c.getJSON(ctx, "get_facility_resources", u+"?"+params.Encode(), nil, &envelope); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

// GetResource получает ресурс с операционными часами
// Публичный эндпоинт, аутентификация не требуется
func (c *Client) GetResource(ctx context.Context, resourceID int64) (*Resource, error) {
	u := fmt.Sprintf("%s/v4/resources/%d?includeAdditionalData=true", c.baseURL, resourceID)

	var envelope resourceEnvelope
	if err := c.getJSON(ctx, "get_resource", u, nil, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Data, nil
}

// GetResourcePackages получает пакеты аренды ресурса с ценами
// Публичный эндпоинт, аутентификация не требуется
func (c *Client) GetResourcePackages(ctx context.Context, resourceID int64) ([]Package, error) {
	u := fmt.Sprintf("%s/v4/resources/%d/packages-v1", c.baseURL, resourceID)

	var envelope packageListEnvelope
	if err := c.getJSON(ctx, "get_resource_packages", u, nil, &envelope); err != nil {
		return nil, err
	}

	packages := make([]Package, len(envelope.Data))
	for i, item := range envelope.Data {
		packages[i] = item.Package
	}
	return packages, nil
}

// GetVenueSlots получает забронированные слоты площадки за период
// Требует аутентификации
func (c *Client) GetVenueSlots(ctx context.Context, creds *Credentials, facilityID int64, startDate, endDate string) ([]Slot, error) {
	if creds == nil {
		return nil, ErrAuthRequired
	}

	u := fmt.Sprintf("%s/v1/venues/%d/slots", c.baseURL, facilityID)

	params := url.Values{}
	if startDate != "" {
		params.Set("startDate", startDate)
	}
	if endDate != "" {
		params.Set("endDate", endDate)
	}
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}

	var envelope slotListEnvelope
	if err := c.getJSON(ctx, "get_venue_slots", u, creds, &envelope); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

// CheckAvailability получает сетку аренды по датам - тот же эндпоинт,
// которым пользуется сайт платформы для показа доступных слотов
// Требует аутентификации. sport <= 0 означает "без фильтра по виду спорта"
func (c *Client) CheckAvailability(ctx context.Context, creds *Credentials, orgID, facilityID int64, dates []string, sport int) (map[string][]GridSlot, error) {
	if creds == nil {
		return nil, ErrAuthRequired
	}

	u := fmt.Sprintf("%s/v4/online-rentals/organization/%d/facility/%d/check-availability", c.baseURL, orgID, facilityID)

	payload := checkAvailabilityRequest{Days: dates}
	if sport > 0 {
		payload.Sport = sport
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setCommonHeaders(req)
	creds.apply(req)

	resp, err := c.do("check_availability", req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrAuthFailed
	case http.StatusNotFound:
		return nil, ErrFacilityNotFound
	default:
		return nil, unexpectedStatus(resp)
	}

	var envelope gridEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return envelope.Data, nil
}

// getJSON выполняет GET-запрос и декодирует ответ
// creds == nil означает публичный вызов
func (c *Client) getJSON(ctx context.Context, endpoint, u string, creds *Credentials, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setCommonHeaders(req)
	creds.apply(req)

	resp, err := c.do(endpoint, req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuthFailed
	case http.StatusNotFound:
		return notFoundError(endpoint)
	default:
		return unexpectedStatus(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func (c *Client) do(endpoint string, req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)

	if c.metrics != nil {
		status := "error"
		if err == nil {
			status = strconv.Itoa(resp.StatusCode)
		}
		c.metrics.ObserveVendorRequest(endpoint, status, time.Since(start))
	}

	return resp, err
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
}

// apply выставляет заголовки аутентификации платформы
// Для SSO-аккаунтов с сырым токеном сессии используется Authorization: Bearer
func (creds *Credentials) apply(req *http.Request) {
	if creds == nil {
		return
	}
	if creds.AccessToken != "" {
		req.Header.Set("x-bonduseraccesstoken", creds.AccessToken)
	}
	if creds.IDToken != "" {
		req.Header.Set("x-bonduseridtoken", creds.IDToken)
	}
	if creds.Username != "" {
		req.Header.Set("x-bonduserusername", creds.Username)
	}
	if creds.SessionToken != "" && creds.AccessToken == "" {
		req.Header.Set("Authorization", "Bearer "+creds.SessionToken)
	}
}

func notFoundError(endpoint string) error {
	switch endpoint {
	case "get_resource", "get_resource_packages":
		return ErrResourceNotFound
	default:
		return ErrFacilityNotFound
	}
}

func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
}
