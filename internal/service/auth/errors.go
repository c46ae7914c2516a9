package auth

import "errors"

var (
	// ErrEmailTaken возвращается при регистрации с занятым email
	ErrEmailTaken = errors.New("email already taken")
	// ErrInvalidCredentials возвращается при неверном email или пароле.
	// Одна ошибка на оба случая, чтобы не раскрывать существование аккаунта
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken возвращается при невалидном или истекшем токене
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
