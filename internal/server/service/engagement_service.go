package service

import (
	"context"
	"time"

	"github.com/AllanRye9/ort-backend/internal/domain/engagement"
	"github.com/AllanRye9/ort-backend/internal/domain/party"
	"github.com/AllanRye9/ort-backend/internal/domain/realty"
)

// EngagementServiceImpl implements the EngagementService interface
type EngagementServiceImpl struct {
	inquiryRepo     engagement.InquiryRepository
	appointmentRepo engagement.AppointmentRepository
	propertyRepo    realty.PropertyRepository
	userRepo        party.UserRepository
	clientRepo      party.ClientRepository
}

// NewEngagementService creates a new engagement service
func NewEngagementService(
	inquiryRepo engagement.InquiryRepository,
	appointmentRepo engagement.AppointmentRepository,
	propertyRepo realty.PropertyRepository,
	userRepo party.UserRepository,
	clientRepo party.ClientRepository,
) EngagementService {
	return &EngagementServiceImpl{
		inquiryRepo:     inquiryRepo,
		appointmentRepo: appointmentRepo,
		propertyRepo:    propertyRepo,
		userRepo:        userRepo,
		clientRepo:      clientRepo,
	}
}

// CreateInquiry records a prospect message against an existing property
func (s *EngagementServiceImpl) CreateInquiry(ctx context.Context, propertyID int64, clientID *int64, message string) (*engagement.Inquiry, error) {
	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return nil, err
	}
	if clientID != nil {
		if _, err := s.clientRepo.GetByID(ctx, *clientID); err != nil {
			return nil, err
		}
	}

	inquiry, err := engagement.NewInquiry(propertyID, clientID, message)
	if err != nil {
		return nil, err
	}

	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	return inquiry, nil
}

// GetInquiry retrieves an inquiry by ID
func (s *EngagementServiceImpl) GetInquiry(ctx context.Context, id int64) (*engagement.Inquiry, error) {
	return s.inquiryRepo.GetByID(ctx, id)
}

// ListInquiries retrieves all inquiries
func (s *EngagementServiceImpl) ListInquiries(ctx context.Context) ([]engagement.Inquiry, error) {
	return s.inquiryRepo.List(ctx)
}

// CreateAppointment books a viewing between an agent and a client
func (s *EngagementServiceImpl) CreateAppointment(ctx context.Context, propertyID, agentID, clientID int64, appointmentDate time.Time) (*engagement.Appointment, error) {
	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, agentID); err != nil {
		return nil, err
	}
	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		return nil, err
	}

	appointment, err := engagement.NewAppointment(propertyID, agentID, clientID, appointmentDate)
	if err != nil {
		return nil, err
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	return appointment, nil
}

// GetAppointment retrieves an appointment by ID
func (s *EngagementServiceImpl) GetAppointment(ctx context.Context, id int64) (*engagement.Appointment, error) {
	return s.appointmentRepo.GetByID(ctx, id)
}

// ListAppointments retrieves all appointments
func (s *EngagementServiceImpl) ListAppointments(ctx context.Context) ([]engagement.Appointment, error) {
	return s.appointmentRepo.List(ctx)
}
