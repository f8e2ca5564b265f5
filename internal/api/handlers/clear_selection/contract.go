package clear_selection

type SelectionService interface {
	Clear(userID int64)
}

type Logger interface {
	Info(format string, v ...interface{})
}
