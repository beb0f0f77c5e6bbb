package utils

import "errors"

var ErrRecordNotFound = errors.New("record not found")

// ErrInvalidWorkbook is returned when an uploaded payload cannot be decoded
// as a spreadsheet grid. The store is never touched in that case.
var ErrInvalidWorkbook = errors.New("file is not a readable spreadsheet")

var ErrDescriptionNotMapped = errors.New("description column is not mapped")

var ErrClosedDateWithoutClosed = errors.New("closed date requires closed status")

func ErrorPanic(err error) {
	if err != nil {
		panic(err)
	}
}
