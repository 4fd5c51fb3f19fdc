package get_service_windows

import (
	"context"

	getServiceWindows "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_service_windows"
)

type GetServiceWindowsUseCase interface {
	Execute(ctx context.Context, req *getServiceWindows.Request) (*getServiceWindows.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
