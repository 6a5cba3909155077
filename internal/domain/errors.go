package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidListingData = errors.New("invalid listing data")
	ErrUnknownListingType = errors.New("unknown listing type")
	ErrHistoryUnavailable = errors.New("search history unavailable")
)

// ServerError is a backend failure surfaced to the screen
type ServerError struct {
	Code    int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Code, e.Message)
}

// ErrorKind classifies non-fatal failures
type ErrorKind string

const (
	ErrorKindStorage ErrorKind = "storage"
	ErrorKindServer  ErrorKind = "server"
)
