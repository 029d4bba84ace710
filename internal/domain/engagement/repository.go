package engagement

import (
	"context"
	"strconv"
)

// InquiryRepository defines inquiry persistence operations. Inquiries are
// create-and-read only from the console.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *Inquiry) error
	GetByID(ctx context.Context, id int64) (*Inquiry, error)
	List(ctx context.Context) ([]Inquiry, error)
}

// AppointmentRepository defines appointment persistence operations.
// Appointments are create-and-read only from the console.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *Appointment) error
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	List(ctx context.Context) ([]Appointment, error)
}

// ErrInquiryNotFound indicates a missing inquiry
type ErrInquiryNotFound struct {
	ID int64
}

func (e ErrInquiryNotFound) Error() string {
	return "inquiry not found: " + strconv.FormatInt(e.ID, 10)
}

// Is matches any ErrInquiryNotFound when the target carries a zero ID
func (e ErrInquiryNotFound) Is(target error) bool {
	t, ok := target.(ErrInquiryNotFound)
	if !ok {
		return false
	}
	return t.ID == 0 || t.ID == e.ID
}

// ErrAppointmentNotFound indicates a missing appointment
type ErrAppointmentNotFound struct {
	ID int64
}

func (e ErrAppointmentNotFound) Error() string {
	return "appointment not found: " + strconv.FormatInt(e.ID, 10)
}

// Is matches any ErrAppointmentNotFound when the target carries a zero ID
func (e ErrAppointmentNotFound) Is(target error) bool {
	t, ok := target.(ErrAppointmentNotFound)
	if !ok {
		return false
	}
	return t.ID == 0 || t.ID == e.ID
}
