package mealplan

import "errors"

var (
	// ErrMissingCredential indicates no API key is configured for the
	// selected text-generation provider. It is returned before any prompt
	// is built or request made.
	ErrMissingCredential = errors.New("meal plan generator credential not configured")

	// ErrUnknownProvider indicates a provider name with no generator.
	ErrUnknownProvider = errors.New("unknown meal plan provider")

	// ErrEmptyResponse indicates the provider answered without any text.
	ErrEmptyResponse = errors.New("empty meal plan response")
)
