package domain

import "errors"

var (
	// ErrInvalidBatchInput is returned when the batch input is not a JSON
	// array of product name strings
	ErrInvalidBatchInput = errors.New("input is not a JSON array of product names")

	// ErrIngredientNotParsed is returned when the parser service cannot
	// produce a parse for the given text
	ErrIngredientNotParsed = errors.New("ingredient could not be parsed")

	// ErrParserUnavailable is returned when the parser service request fails
	ErrParserUnavailable = errors.New("ingredient parser request failed")
)
