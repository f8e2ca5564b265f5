package auth

import "errors"

var (
	// ErrEmailTaken возвращается при регистрации на занятый email
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials возвращается при неверном email или пароле.
	// Формулировка намеренно общая: какая именно часть пары неверна,
	// наружу не раскрывается.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
