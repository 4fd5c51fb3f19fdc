package get_composed_windows

import (
	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	getComposedWindows "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_composed_windows"
)

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getComposedWindows.Response) *handlers.WindowsResponse {
	return &handlers.WindowsResponse{
		Service:  handlers.FromDomainService(resp.Service),
		Timezone: resp.Timezone,
		Slots:    handlers.FromDomainWindows(resp.Windows),
	}
}
