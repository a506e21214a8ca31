package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/DTS-BookingService/internal/domain"
)

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

	if req.EndTime != nil {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
		}
		if !req.EndTime.IsAfter(req.StartTime) {
			return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
		}
	}

	if req.ModelID != nil && *req.ModelID <= 0 {
		return fmt.Errorf("%w: modelId must be positive", ErrInvalidInput)
	}

	if err := validateCustomer(req.Customer); err != nil {
		return err
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateCustomer проверяет, что указан ровно один способ идентификации
// клиента: существующий ID либо телефон с именем
func validateCustomer(customer CustomerData) error {
	if customer.CustomerID != nil {
		if *customer.CustomerID <= 0 {
			return fmt.Errorf("%w: customerId must be positive", ErrInvalidInput)
		}
		return nil
	}

	if customer.Phone == nil || strings.TrimSpace(*customer.Phone) == "" {
		return fmt.Errorf("%w: either customerId or customer phone is required", ErrInvalidInput)
	}

	if customer.Name == nil || strings.TrimSpace(*customer.Name) == "" {
		return fmt.Errorf("%w: customer name is required when booking by phone", ErrInvalidInput)
	}

	return nil
}
