package services

import "errors"

var (
	ErrTokenRequired     = errors.New("token is required")
	ErrDraftNotFound     = errors.New("draft not found")
	ErrUnknownProduct    = errors.New("unknown product")
	ErrRowNotFound       = errors.New("row not found")
	ErrUnknownField      = errors.New("unknown row field")
	ErrInvalidRowCount   = errors.New("row count must be between 1 and 50")
	ErrContainerRequired = errors.New("container number is required in cargo details")
	ErrRowsRequired      = errors.New("add at least one product line with dimensions or quantity")
	ErrContainerNotFound = errors.New("staged container not found")
	ErrNothingToSubmit   = errors.New("no data to submit")
	ErrInvalidWorkbook   = errors.New("invalid workbook")
	ErrCleaningRunning   = errors.New("cleaning is in progress")

	// errNoChange aborts a draft update without persisting it.
	errNoChange = errors.New("no change")
)
