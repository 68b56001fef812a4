package service

import "errors"

// Сигнальные ошибки бизнес-логики, которые хендлеры транслируют в HTTP-статусы
var (
	// ErrNotFound - запрошенная сущность не существует
	ErrNotFound = errors.New("not found")
	// ErrInvalidState - операция недопустима в текущем состоянии сущности
	ErrInvalidState = errors.New("invalid state")
	// ErrForbidden - у пользователя нет прав на операцию
	ErrForbidden = errors.New("forbidden")
	// ErrValidation - входные данные не прошли бизнес-проверку
	ErrValidation = errors.New("validation failed")
)
