package model

import (
	"errors"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

// Sentinel errors for domain operations
var (
	ErrEmployeeNotFound = goerr.New("employee not found")
	ErrManagerNotFound  = goerr.New("manager not found")
	ErrSelfManaged      = goerr.New("employee cannot report to itself")
	ErrCyclicManager    = goerr.New("employee cannot report to one of its own reports")
	ErrEmployeeExists   = goerr.New("employee already exists")
)

// StoreError is a request the employee store answered with a non-2xx status.
// Message is the store's human readable explanation and may be empty.
type StoreError struct {
	Status  int
	Message string
}

func (e *StoreError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("store responded %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("store responded %d", e.Status)
}

// StoreMessage returns the message of the StoreError in err's chain, or ""
func StoreMessage(err error) string {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}
