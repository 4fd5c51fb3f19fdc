package get_composed_windows

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/usecase/common"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxRangeDays int) error {
	if err := common.ValidateIDs(req.CompanyID, req.ProfessionalID); err != nil {
		return err
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", common.ErrInvalidInput)
	}

	return common.ValidateRange(req.From, req.To, maxRangeDays)
}
