package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/AllanRye9/ort-backend/internal/domain/engagement"
	"github.com/AllanRye9/ort-backend/internal/platform/persistence"
)

// InquiryRepository implements engagement.InquiryRepository for PostgreSQL
type InquiryRepository struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewInquiryRepository creates a new PostgreSQL inquiry repository
func NewInquiryRepository(logger *slog.Logger, db *persistence.PostgresDB) engagement.InquiryRepository {
	return &InquiryRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Create stores a new inquiry and fills in its generated ID
func (r *InquiryRepository) Create(ctx context.Context, inquiry *engagement.Inquiry) error {
	query := `
		INSERT INTO inquiries (property_id, client_id, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.querier.QueryRow(ctx, query,
		inquiry.PropertyID,
		inquiry.ClientID,
		inquiry.Message,
		inquiry.Status,
		inquiry.CreatedAt,
	).Scan(&inquiry.ID)
	if err != nil {
		r.logger.Error("Failed to create inquiry", "error", err)
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	return nil
}

// GetByID retrieves an inquiry by its ID
func (r *InquiryRepository) GetByID(ctx context.Context, id int64) (*engagement.Inquiry, error) {
	query := `
		SELECT id, property_id, client_id, message, status, created_at
		FROM inquiries
		WHERE id = $1
	`

	var inq engagement.Inquiry
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&inq.ID,
		&inq.PropertyID,
		&inq.ClientID,
		&inq.Message,
		&inq.Status,
		&inq.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, engagement.ErrInquiryNotFound{ID: id}
		}
		r.logger.Error("Failed to get inquiry", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}

	return &inq, nil
}

// List retrieves all inquiries ordered by ID
func (r *InquiryRepository) List(ctx context.Context) ([]engagement.Inquiry, error) {
	query := `
		SELECT id, property_id, client_id, message, status, created_at
		FROM inquiries
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list inquiries", "error", err)
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []engagement.Inquiry
	for rows.Next() {
		var inq engagement.Inquiry
		if err := rows.Scan(
			&inq.ID,
			&inq.PropertyID,
			&inq.ClientID,
			&inq.Message,
			&inq.Status,
			&inq.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inquiries: %w", err)
	}

	return inquiries, nil
}

// AppointmentRepository implements engagement.AppointmentRepository for PostgreSQL
type AppointmentRepository struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewAppointmentRepository creates a new PostgreSQL appointment repository
func NewAppointmentRepository(logger *slog.Logger, db *persistence.PostgresDB) engagement.AppointmentRepository {
	return &AppointmentRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Create stores a new appointment and fills in its generated ID
func (r *AppointmentRepository) Create(ctx context.Context, appointment *engagement.Appointment) error {
	query := `
		INSERT INTO appointments (property_id, agent_id, client_id, appointment_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.querier.QueryRow(ctx, query,
		appointment.PropertyID,
		appointment.AgentID,
		appointment.ClientID,
		appointment.AppointmentDate,
		appointment.Status,
	).Scan(&appointment.ID)
	if err != nil {
		r.logger.Error("Failed to create appointment", "error", err)
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	return nil
}

// GetByID retrieves an appointment by its ID
func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*engagement.Appointment, error) {
	query := `
		SELECT id, property_id, agent_id, client_id, appointment_date, status
		FROM appointments
		WHERE id = $1
	`

	var appt engagement.Appointment
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&appt.ID,
		&appt.PropertyID,
		&appt.AgentID,
		&appt.ClientID,
		&appt.AppointmentDate,
		&appt.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, engagement.ErrAppointmentNotFound{ID: id}
		}
		r.logger.Error("Failed to get appointment", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	return &appt, nil
}

// List retrieves all appointments ordered by ID
func (r *AppointmentRepository) List(ctx context.Context) ([]engagement.Appointment, error) {
	query := `
		SELECT id, property_id, agent_id, client_id, appointment_date, status
		FROM appointments
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list appointments", "error", err)
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	var appointments []engagement.Appointment
	for rows.Next() {
		var appt engagement.Appointment
		if err := rows.Scan(
			&appt.ID,
			&appt.PropertyID,
			&appt.AgentID,
			&appt.ClientID,
			&appt.AppointmentDate,
			&appt.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate appointments: %w", err)
	}

	return appointments, nil
}
