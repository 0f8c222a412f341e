package validation

import "fmt"

const maxRoutineTitleLen = 50

// ValidateRoutineTitle checks routine title length bounds.
func ValidateRoutineTitle(title string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxRoutineTitleLen {
		return fmt.Errorf("title must not exceed %d characters", maxRoutineTitleLen)
	}
	return nil
}

// ValidateEntryOrders checks the order values of a routine's exercise entries:
// the list must be non-empty, every order at least 1, and no order repeated.
func ValidateEntryOrders(orders []uint) error {
	if len(orders) == 0 {
		return fmt.Errorf("routine must contain at least one exercise")
	}

	seen := make(map[uint]struct{}, len(orders))
	for _, order := range orders {
		if order < 1 {
			return fmt.Errorf("exercise order must be 1 or greater")
		}
		if _, dup := seen[order]; dup {
			return fmt.Errorf("duplicate exercise order %d", order)
		}
		seen[order] = struct{}{}
	}

	return nil
}

// ValidateDayIndex checks a weekly schedule slot index (0=Monday..6=Sunday).
func ValidateDayIndex(dayIndex uint) error {
	if dayIndex > 6 {
		return fmt.Errorf("day_index must be between 0 and 6")
	}
	return nil
}
