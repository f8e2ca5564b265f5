package catalog

import "errors"

var (
	// ErrServiceNotFound услуга с таким ID отсутствует в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrMechanicNotFound механик с таким ID отсутствует в каталоге
	ErrMechanicNotFound = errors.New("mechanic not found")
)
