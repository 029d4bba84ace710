// Package engagement covers client interest in properties: inquiries coming
// in from the listings and the viewing appointments booked from them.
package engagement

import (
	"errors"
	"time"
)

// InquiryStatus tracks the follow-up state of an inquiry
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// AppointmentStatus tracks the lifecycle of a viewing appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Common errors
var (
	ErrEmptyMessage        = errors.New("inquiry message cannot be empty")
	ErrZeroAppointmentDate = errors.New("appointment date is required")
)

// Inquiry is a prospect's message about a property. The client reference is
// optional: walk-in inquiries arrive before a client record exists.
type Inquiry struct {
	ID         int64         `json:"id"`
	PropertyID int64         `json:"property_id"`
	ClientID   *int64        `json:"client_id,omitempty"`
	Message    string        `json:"message"`
	Status     InquiryStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

// NewInquiry creates an inquiry in the new state
func NewInquiry(propertyID int64, clientID *int64, message string) (*Inquiry, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}
	return &Inquiry{
		PropertyID: propertyID,
		ClientID:   clientID,
		Message:    message,
		Status:     InquiryStatusNew,
		CreatedAt:  time.Now(),
	}, nil
}

// Appointment is a scheduled property viewing between an agent and a client
type Appointment struct {
	ID              int64             `json:"id"`
	PropertyID      int64             `json:"property_id"`
	AgentID         int64             `json:"agent_id"`
	ClientID        int64             `json:"client_id"`
	AppointmentDate time.Time         `json:"appointment_date"`
	Status          AppointmentStatus `json:"status"`
}

// NewAppointment creates an appointment in the scheduled state
func NewAppointment(propertyID, agentID, clientID int64, appointmentDate time.Time) (*Appointment, error) {
	if appointmentDate.IsZero() {
		return nil, ErrZeroAppointmentDate
	}
	return &Appointment{
		PropertyID:      propertyID,
		AgentID:         agentID,
		ClientID:        clientID,
		AppointmentDate: appointmentDate,
		Status:          AppointmentStatusScheduled,
	}, nil
}
