package get_rental_grid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getRentalGrid "github.com/m04kA/SRF-AvailabilityService/internal/usecase/get_rental_grid"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	lastReq *getRentalGrid.Request
	resp    *getRentalGrid.Response
	err     error
}

func (uc *fakeUseCase) Execute(ctx context.Context, req *getRentalGrid.Request) (*getRentalGrid.Response, error) {
	uc.lastReq = req
	return uc.resp, uc.err
}

func doRequest(h *Handler, url string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/facilities/{facilityKey}/rental-grid", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_Defaults(t *testing.T) {
	uc := &fakeUseCase{resp: &getRentalGrid.Response{FacilityKey: "wall-street"}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, "/api/v1/facilities/wall-street/rental-grid?date=2026-02-15")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq)
	require.Len(t, uc.lastReq.Dates, 1)
	assert.Equal(t, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), uc.lastReq.Dates[0])
	assert.Equal(t, 4, uc.lastReq.Sport)
}

func TestHandle_MultipleDays(t *testing.T) {
	uc := &fakeUseCase{resp: &getRentalGrid.Response{FacilityKey: "wall-street"}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, "/api/v1/facilities/wall-street/rental-grid?date=2026-02-15&days=3&sport=1")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, uc.lastReq.Dates, 3)
	assert.Equal(t, time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC), uc.lastReq.Dates[2])
	assert.Equal(t, 1, uc.lastReq.Sport)
}

func TestHandle_DaysOutOfRange(t *testing.T) {
	for _, days := range []string{"-1", "0", "15", "1000000"} {
		uc := &fakeUseCase{}
		h := NewHandler(uc, nopLogger{})

		rec := doRequest(h, "/api/v1/facilities/wall-street/rental-grid?date=2026-02-15&days="+days)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "days=%s", days)
		assert.Nil(t, uc.lastReq, "days=%s", days)
	}
}

func TestHandle_MissingDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(h, "/api/v1/facilities/wall-street/rental-grid")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownFacility(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: getRentalGrid.ErrUnknownFacility}, nopLogger{})

	rec := doRequest(h, "/api/v1/facilities/nowhere/rental-grid?date=2026-02-15")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_AuthFailure(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: getRentalGrid.ErrAuthFailed}, nopLogger{})

	rec := doRequest(h, "/api/v1/facilities/wall-street/rental-grid?date=2026-02-15")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
