package service

import "errors"

var (
	ErrInvalidAmount       = errors.New("invalid input, numbers only")
	ErrInvalidName         = errors.New("invalid account name")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAccountNotFound     = errors.New("account not found")
	ErrAttemptsExhausted   = errors.New("no matching account after all attempts")
)
