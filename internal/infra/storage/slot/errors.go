package slot

import "errors"

var (
	// ErrDuplicateSlot возвращается, когда слот с таким (professional_id, start_time) уже существует
	ErrDuplicateSlot = errors.New("slot.repository: duplicate slot for professional and start time")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
