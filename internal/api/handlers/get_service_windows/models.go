package get_service_windows

import (
	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	getServiceWindows "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_service_windows"
)

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getServiceWindows.Response) *handlers.WindowsResponse {
	return &handlers.WindowsResponse{
		Service:  handlers.FromDomainService(resp.Service),
		Timezone: resp.Timezone,
		Slots:    handlers.FromDomainWindows(resp.Windows),
	}
}
