// Package models содержит общие DTO ответов API бронирований
package models

import (
	"time"

	"github.com/m04kA/DTS-BookingService/internal/domain"
)

// BookingResponse представление бронирования в API
type BookingResponse struct {
	ID                 int64      `json:"id"`
	Reference          string     `json:"reference"`
	ShowroomID         int64      `json:"showroomId"`
	VehicleUnitID      int64      `json:"vehicleUnitId"`
	ModelID            int64      `json:"modelId"`
	CustomerID         int64      `json:"customerId"`
	StaffID            *int64     `json:"staffId,omitempty"`
	BookingDate        string     `json:"bookingDate"`
	StartTime          string     `json:"startTime"`
	EndTime            string     `json:"endTime"`
	Status             string     `json:"status"`
	Source             *string    `json:"source,omitempty"`
	ModelName          string     `json:"modelName"`
	VehicleVIN         string     `json:"vehicleVin"`
	CustomerName       string     `json:"customerName"`
	CustomerPhone      string     `json:"customerPhone"`
	Notes              *string    `json:"notes,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// ToBookingResponse конвертирует доменную модель в DTO ответа
func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID,
		Reference:          b.Reference,
		ShowroomID:         b.ShowroomID,
		VehicleUnitID:      b.VehicleUnitID,
		ModelID:            b.ModelID,
		CustomerID:         b.CustomerID,
		StaffID:            b.StaffID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		Status:             string(b.Status),
		Source:             b.Source,
		ModelName:          b.ModelName,
		VehicleVIN:         b.VehicleVIN,
		CustomerName:       b.CustomerName,
		CustomerPhone:      b.CustomerPhone,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CompletedAt:        b.CompletedAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// ToBookingResponses конвертирует срез доменных моделей в DTO ответа
func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, ToBookingResponse(b))
	}
	return result
}
