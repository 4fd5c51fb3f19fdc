package service

import "github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
