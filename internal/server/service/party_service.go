package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/AllanRye9/ort-backend/internal/domain/party"
)

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userRepo party.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo party.UserRepository) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

// CreateUser hashes the password and stores a new user
func (s *UserServiceImpl) CreateUser(ctx context.Context, role party.Role, firstName, lastName, email, phone, password string) (*party.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := party.NewUser(role, firstName, lastName, email, phone, hash)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserServiceImpl) GetUser(ctx context.Context, id int64) (*party.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers retrieves all users
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]party.User, error) {
	return s.userRepo.List(ctx)
}

// UpdateUser rewrites a user's fields. An empty password keeps the stored hash.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, id int64, role party.Role, firstName, lastName, email, phone, password string) (*party.User, error) {
	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hash := existing.PasswordHash
	if password != "" {
		if hash, err = hashPassword(password); err != nil {
			return nil, err
		}
	}

	user, err := party.NewUser(role, firstName, lastName, email, phone, hash)
	if err != nil {
		return nil, err
	}
	user.ID = id
	user.CreatedAt = existing.CreatedAt

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// ClientServiceImpl implements the ClientService interface
type ClientServiceImpl struct {
	clientRepo party.ClientRepository
	userRepo   party.UserRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo party.ClientRepository, userRepo party.UserRepository) ClientService {
	return &ClientServiceImpl{
		clientRepo: clientRepo,
		userRepo:   userRepo,
	}
}

// CreateClient stores a new client, verifying the assigned agent exists
func (s *ClientServiceImpl) CreateClient(ctx context.Context, agentID *int64, firstName, lastName, email, phone string, clientType party.ClientType) (*party.Client, error) {
	if err := s.checkAgent(ctx, agentID); err != nil {
		return nil, err
	}

	client, err := party.NewClient(agentID, firstName, lastName, email, phone, clientType)
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientServiceImpl) GetClient(ctx context.Context, id int64) (*party.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

// ListClients retrieves all clients
func (s *ClientServiceImpl) ListClients(ctx context.Context) ([]party.Client, error) {
	return s.clientRepo.List(ctx)
}

// UpdateClient rewrites a client's fields
func (s *ClientServiceImpl) UpdateClient(ctx context.Context, id int64, agentID *int64, firstName, lastName, email, phone string, clientType party.ClientType) (*party.Client, error) {
	existing, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkAgent(ctx, agentID); err != nil {
		return nil, err
	}

	client, err := party.NewClient(agentID, firstName, lastName, email, phone, clientType)
	if err != nil {
		return nil, err
	}
	client.ID = id
	client.CreatedAt = existing.CreatedAt

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// DeleteClient removes a client
func (s *ClientServiceImpl) DeleteClient(ctx context.Context, id int64) error {
	return s.clientRepo.Delete(ctx, id)
}

func (s *ClientServiceImpl) checkAgent(ctx context.Context, agentID *int64) error {
	if agentID == nil {
		return nil
	}
	_, err := s.userRepo.GetByID(ctx, *agentID)
	return err
}
