package submit_booking

import "errors"

var (
	// ErrIncompleteSelection возвращается, когда в черновике не хватает
	// обязательных полей для оформления бронирования
	ErrIncompleteSelection = errors.New("submit_booking: selection is incomplete")

	// ErrCarNotFound возвращается, когда выбранный автомобиль не существует
	ErrCarNotFound = errors.New("submit_booking: car not found")

	// ErrCarNotOwned возвращается, когда автомобиль принадлежит другому пользователю
	ErrCarNotOwned = errors.New("submit_booking: car belongs to another user")

	// ErrMechanicNotFound возвращается, когда выбранный механик не существует
	ErrMechanicNotFound = errors.New("submit_booking: mechanic not found")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("submit_booking: booking date is in the past")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
