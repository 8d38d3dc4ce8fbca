package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure of the fetch-and-render path.
type ErrorKind int

const (
	KindFetchFailure ErrorKind = iota + 1
	KindMalformedResponse
	KindUnmappedCategory
	KindInternal
)

// GenericErrorMessage is what users see for anything that is not an unmapped category.
const GenericErrorMessage = "City not found. Please try again."

func (k ErrorKind) String() string {
	switch k {
	case KindFetchFailure:
		return "FetchFailure"
	case KindMalformedResponse:
		return "MalformedResponse"
	case KindUnmappedCategory:
		return "UnmappedCategory"
	case KindInternal:
		return "Internal"
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

type ForecastError struct {
	Kind     ErrorKind
	Category string
	Err      error
}

func (e *ForecastError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}

	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *ForecastError) Unwrap() error {
	return e.Err
}

// Is matches on Kind so callers can write errors.Is(err, &ForecastError{Kind: KindFetchFailure}).
func (e *ForecastError) Is(target error) bool {
	t, ok := target.(*ForecastError)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

// UserMessage is the single inline message shown for this failure.
func (e *ForecastError) UserMessage() string {
	if e.Kind == KindUnmappedCategory {
		return fmt.Sprintf("No icon for weather condition %q.", e.Category)
	}

	return GenericErrorMessage
}

func NewFetchFailure(err error) *ForecastError {
	return &ForecastError{Kind: KindFetchFailure, Err: err}
}

func NewMalformedResponse(err error) *ForecastError {
	return &ForecastError{Kind: KindMalformedResponse, Err: err}
}

func NewUnmappedCategory(category string) *ForecastError {
	return &ForecastError{
		Kind:     KindUnmappedCategory,
		Category: category,
		Err:      fmt.Errorf("no icon for weather category %q", category),
	}
}

func NewInternal(err error) *ForecastError {
	return &ForecastError{Kind: KindInternal, Err: err}
}

// AsForecastError classifies any error, treating unknown ones as internal.
func AsForecastError(err error) *ForecastError {
	if err == nil {
		return nil
	}

	var fe *ForecastError
	if errors.As(err, &fe) {
		return fe
	}

	return NewInternal(err)
}
