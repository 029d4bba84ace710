// Package postgres provides PostgreSQL implementations of the domain
// repositories. Each repository works against a Querier so it can run on the
// shared pool or inside a transaction.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/AllanRye9/ort-backend/internal/domain/party"
	"github.com/AllanRye9/ort-backend/internal/platform/persistence"
)

// UserRepository implements party.UserRepository for PostgreSQL
type UserRepository struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(logger *slog.Logger, db *persistence.PostgresDB) party.UserRepository {
	return &UserRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Create stores a new user and fills in its generated ID. A duplicate email
// is reported as party.ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, user *party.User) error {
	query := `
		INSERT INTO users (role, first_name, last_name, email, phone, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.querier.QueryRow(ctx, query,
		user.Role,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return party.ErrDuplicateEmail{Email: user.Email}
		}
		r.logger.Error("Failed to create user", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by its ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*party.User, error) {
	query := `
		SELECT id, role, first_name, last_name, email, phone, password_hash, created_at
		FROM users
		WHERE id = $1
	`

	var u party.User
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Role,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Phone,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, party.ErrUserNotFound{ID: id}
		}
		r.logger.Error("Failed to get user", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

// List retrieves all users ordered by ID
func (r *UserRepository) List(ctx context.Context) ([]party.User, error) {
	query := `
		SELECT id, role, first_name, last_name, email, phone, password_hash, created_at
		FROM users
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []party.User
	for rows.Next() {
		var u party.User
		if err := rows.Scan(
			&u.ID,
			&u.Role,
			&u.FirstName,
			&u.LastName,
			&u.Email,
			&u.Phone,
			&u.PasswordHash,
			&u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// Update rewrites a user's mutable fields
func (r *UserRepository) Update(ctx context.Context, user *party.User) error {
	query := `
		UPDATE users
		SET role = $2, first_name = $3, last_name = $4, email = $5, phone = $6, password_hash = $7
		WHERE id = $1
	`

	tag, err := r.querier.Exec(ctx, query,
		user.ID,
		user.Role,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Phone,
		user.PasswordHash,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return party.ErrDuplicateEmail{Email: user.Email}
		}
		r.logger.Error("Failed to update user", "id", user.ID, "error", err)
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return party.ErrUserNotFound{ID: user.ID}
	}

	return nil
}

// Delete removes a user. Clients assigned to the user keep their records with
// the agent reference nulled out by the schema.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete user", "id", id, "error", err)
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return party.ErrUserNotFound{ID: id}
	}

	return nil
}

// ClientRepository implements party.ClientRepository for PostgreSQL
type ClientRepository struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewClientRepository creates a new PostgreSQL client repository
func NewClientRepository(logger *slog.Logger, db *persistence.PostgresDB) party.ClientRepository {
	return &ClientRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Create stores a new client and fills in its generated ID
func (r *ClientRepository) Create(ctx context.Context, client *party.Client) error {
	query := `
		INSERT INTO clients (agent_id, first_name, last_name, email, phone, client_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.querier.QueryRow(ctx, query,
		client.AgentID,
		client.FirstName,
		client.LastName,
		client.Email,
		client.Phone,
		client.ClientType,
		client.CreatedAt,
	).Scan(&client.ID)
	if err != nil {
		r.logger.Error("Failed to create client", "error", err)
		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

// GetByID retrieves a client by its ID
func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*party.Client, error) {
	query := `
		SELECT id, agent_id, first_name, last_name, email, phone, client_type, created_at
		FROM clients
		WHERE id = $1
	`

	var c party.Client
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.AgentID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.ClientType,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, party.ErrClientNotFound{ID: id}
		}
		r.logger.Error("Failed to get client", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return &c, nil
}

// List retrieves all clients ordered by ID
func (r *ClientRepository) List(ctx context.Context) ([]party.Client, error) {
	query := `
		SELECT id, agent_id, first_name, last_name, email, phone, client_type, created_at
		FROM clients
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list clients", "error", err)
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []party.Client
	for rows.Next() {
		var c party.Client
		if err := rows.Scan(
			&c.ID,
			&c.AgentID,
			&c.FirstName,
			&c.LastName,
			&c.Email,
			&c.Phone,
			&c.ClientType,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clients: %w", err)
	}

	return clients, nil
}

// Update rewrites a client's mutable fields
func (r *ClientRepository) Update(ctx context.Context, client *party.Client) error {
	query := `
		UPDATE clients
		SET agent_id = $2, first_name = $3, last_name = $4, email = $5, phone = $6, client_type = $7
		WHERE id = $1
	`

	tag, err := r.querier.Exec(ctx, query,
		client.ID,
		client.AgentID,
		client.FirstName,
		client.LastName,
		client.Email,
		client.Phone,
		client.ClientType,
	)
	if err != nil {
		r.logger.Error("Failed to update client", "id", client.ID, "error", err)
		return fmt.Errorf("failed to update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return party.ErrClientNotFound{ID: client.ID}
	}

	return nil
}

// Delete removes a client
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM clients WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete client", "id", id, "error", err)
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return party.ErrClientNotFound{ID: id}
	}

	return nil
}
