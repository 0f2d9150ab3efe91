package itinerary

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNoItemsSelected             = errors.New("select at least one item before organizing")
	ErrCityChangeNeedsConfirmation = errors.New("day already has items; confirm to clear them and change city")
	ErrNoPendingCityChange         = errors.New("no city change awaiting confirmation")
	ErrItemNotEligible             = errors.New("item is not available on this day")
	ErrNoEmptyDaysPending          = errors.New("no empty-day warning to resolve")
)

// EmptyDaysError lists the days without items. ProceedToOrganize returns it
// and waits for ResolveEmptyDays.
type EmptyDaysError struct {
	Days []int
}

func (e *EmptyDaysError) Error() string {
	parts := make([]string, len(e.Days))
	for i, d := range e.Days {
		parts[i] = strconv.Itoa(d)
	}
	return fmt.Sprintf("days without items: %s", strings.Join(parts, ", "))
}
