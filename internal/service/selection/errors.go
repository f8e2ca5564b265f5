package selection

import "errors"

var (
	// ErrServiceNotFound возвращается при добавлении неизвестной услуги
	ErrServiceNotFound = errors.New("service not found")

	// ErrMechanicNotFound возвращается при выборе неизвестного механика
	ErrMechanicNotFound = errors.New("mechanic not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
