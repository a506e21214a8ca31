package get_available_slots

import "fmt"

// validateRequest проверяет корректность входных данных
func validateRequest(req Request) error {
	if req.ShowroomID <= 0 {
		return fmt.Errorf("%w: showroomId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ModelID != nil && *req.ModelID <= 0 {
		return fmt.Errorf("%w: modelId must be positive", ErrInvalidInput)
	}

	return nil
}
