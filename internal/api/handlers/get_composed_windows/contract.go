package get_composed_windows

import (
	"context"

	getComposedWindows "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_composed_windows"
)

type GetComposedWindowsUseCase interface {
	Execute(ctx context.Context, req *getComposedWindows.Request) (*getComposedWindows.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
