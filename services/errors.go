package services

import "errors"

// Common errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrPageNotFound       = errors.New("page not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNicknameLocked     = errors.New("nickname cannot be changed once set")
	ErrNicknameTaken      = errors.New("nickname already in use")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrUploadConfig       = errors.New("upload storage is not configured")
	ErrInternal           = errors.New("internal server error")
)
