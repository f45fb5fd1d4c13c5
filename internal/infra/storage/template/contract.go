package template

import "github.com/m04kA/SMC-SlotService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
