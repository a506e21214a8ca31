package hold_slot

import "fmt"

// validateRequest проверяет корректность входных данных
func validateRequest(req Request) error {
	if req.ShowroomID <= 0 {
		return fmt.Errorf("%w: showroomId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	return nil
}
