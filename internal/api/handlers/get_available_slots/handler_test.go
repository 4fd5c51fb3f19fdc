package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/usecase/common"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
)

type stubUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc *stubUseCase, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/companies/{companyId}/professionals/{professionalId}/available-slots",
		NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_VirtualSlots(t *testing.T) {
	start := time.Date(2026, 1, 27, 11, 0, 0, 0, time.UTC)
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		ProfessionalID: 7,
		Generated:      true,
		Slots: []getAvailableSlots.Slot{
			{Ref: domain.VirtualRef(start), StartTime: start, EndTime: start.Add(15 * time.Minute), IsAvailable: true},
		},
	}}

	rec := serve(uc, "/api/v1/companies/1/professionals/7/available-slots?from=2026-01-27T00:00:00Z&to=2026-01-27T23:59:59Z")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.got.ServiceID)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Generated)
	require.Len(t, body.Slots, 1)
	assert.True(t, body.Slots[0].ID.IsVirtual())
	assert.Equal(t, "2026-01-27T11:15:00Z", body.Slots[0].EndTime)
}

func TestHandle_ServiceFilterPassedThrough(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{ProfessionalID: 7}}

	rec := serve(uc, "/api/v1/companies/1/professionals/7/available-slots?serviceId=3&from=2026-01-27&to=2026-01-27")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got.ServiceID)
	assert.Equal(t, int64(3), *uc.got.ServiceID)
}

func TestHandle_Errors(t *testing.T) {
	rec := serve(&stubUseCase{}, "/api/v1/companies/1/professionals/0/available-slots?from=2026-01-27&to=2026-01-27")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(&stubUseCase{err: common.ErrProfessionalNotFound},
		"/api/v1/companies/1/professionals/7/available-slots?from=2026-01-27&to=2026-01-27")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reason":"professional_not_found"`)

	rec = serve(&stubUseCase{err: common.ErrServiceDurationMissing},
		"/api/v1/companies/1/professionals/7/available-slots?serviceId=4&from=2026-01-27&to=2026-01-27")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
