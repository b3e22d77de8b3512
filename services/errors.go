package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidReference  = errors.New("invalid menu item reference")
	ErrUnavailable       = errors.New("menu item unavailable")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrTotalOutOfRange   = errors.New("order total out of range")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidPagination = errors.New("invalid pagination")
	ErrMenuItemInUse     = errors.New("menu item is referenced by existing orders")
)

// NotFoundError names the missing entity and matches ErrNotFound.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// LineError reports the order line that failed validation. Line is zero based.
type LineError struct {
	Line       int
	MenuItemID uint
	Err        error
}

func (e *LineError) Error() string {
	switch e.Err {
	case ErrInvalidReference:
		return fmt.Sprintf("invalid menu item %d for this restaurant", e.MenuItemID)
	case ErrUnavailable:
		return fmt.Sprintf("menu item %d is not available", e.MenuItemID)
	case ErrInvalidQuantity:
		return fmt.Sprintf("line %d (menu item %d): quantity must be at least 1", e.Line+1, e.MenuItemID)
	case ErrTotalOutOfRange:
		return fmt.Sprintf("line %d (menu item %d): order total is too large", e.Line+1, e.MenuItemID)
	}
	return fmt.Sprintf("line %d: %v", e.Line+1, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is caused by bad client input.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidReference,
		ErrUnavailable,
		ErrInvalidQuantity,
		ErrTotalOutOfRange,
		ErrEmptyOrder,
		ErrInvalidStatus,
		ErrInvalidAmount,
		ErrInvalidPagination,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsConflict reports errors caused by the current state of stored data.
func IsConflict(err error) bool {
	return errors.Is(err, ErrInvalidTransition) || errors.Is(err, ErrMenuItemInUse)
}
