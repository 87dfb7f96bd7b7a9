package macro

import "errors"

var (
	// ErrInvalidActivityLevel indicates an activity tier that is not in the
	// multiplier table.
	ErrInvalidActivityLevel = errors.New("invalid activity level")

	// ErrInvalidGoalOrPace indicates a goal/pace combination missing from the
	// calorie delta table.
	ErrInvalidGoalOrPace = errors.New("invalid goal or pace")

	// ErrInvalidSex indicates a sex other than male or female.
	ErrInvalidSex = errors.New("invalid sex")

	// ErrOutOfRange indicates a numeric profile field outside the accepted range.
	ErrOutOfRange = errors.New("profile value out of range")
)
