package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/usecase/common"
)

func TestRespondUseCaseError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantReason string
	}{
		{err: fmt.Errorf("%w: bad id", common.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantReason: ReasonInvalidInput},
		{err: common.ErrRangeTooLarge, wantStatus: http.StatusBadRequest, wantReason: ReasonRangeTooLarge},
		{err: common.ErrProfessionalNotFound, wantStatus: http.StatusNotFound, wantReason: ReasonProfessionalNotFound},
		{err: common.ErrServiceNotFound, wantStatus: http.StatusNotFound, wantReason: ReasonServiceNotFound},
		{err: common.ErrServiceDurationMissing, wantStatus: http.StatusUnprocessableEntity, wantReason: ReasonServiceDurationMissing},
		{err: common.ErrInvalidClosingTime, wantStatus: http.StatusUnprocessableEntity, wantReason: ReasonInvalidClosingTime},
		{err: common.ErrUnknownTimezone, wantStatus: http.StatusUnprocessableEntity, wantReason: ReasonUnknownTimezone},
		{err: fmt.Errorf("%w: pq: connection refused", common.ErrInternal), wantStatus: http.StatusInternalServerError, wantReason: ReasonInternal},
		{err: errors.New("unexpected"), wantStatus: http.StatusInternalServerError, wantReason: ReasonInternal},
	}

	for _, tt := range tests {
		t.Run(tt.wantReason, func(t *testing.T) {
			rec := httptest.NewRecorder()

			status := RespondUseCaseError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.Equal(t, tt.wantReason, body.Reason)
			assert.NotContains(t, body.Message, "pq:")
		})
	}
}
