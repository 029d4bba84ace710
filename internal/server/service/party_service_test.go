package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AllanRye9/ort-backend/internal/domain/party"
)

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password before storing", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*party.User")).Return(nil).Once()

		user, err := svc.CreateUser(ctx, party.RoleAgent, "Jane", "Doe", "jane@example.com", "", "s3cretpass")

		require.NoError(t, err)
		assert.NotEqual(t, "s3cretpass", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cretpass")))
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid role never reaches the repository", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)

		_, err := svc.CreateUser(ctx, "intern", "Jane", "Doe", "jane@example.com", "", "s3cretpass")

		assert.ErrorIs(t, err, party.ErrInvalidRole)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("empty password keeps the stored hash", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)

		existing := &party.User{ID: 1, Role: party.RoleAgent, FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", PasswordHash: "stored-hash"}
		mockRepo.On("GetByID", ctx, int64(1)).Return(existing, nil).Once()
		mockRepo.On("Update", ctx, mock.AnythingOfType("*party.User")).Return(nil).Once()

		user, err := svc.UpdateUser(ctx, 1, party.RoleAdmin, "Jane", "Doe", "jane@example.com", "", "")

		require.NoError(t, err)
		assert.Equal(t, "stored-hash", user.PasswordHash)
		assert.Equal(t, party.RoleAdmin, user.Role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)

		mockRepo.On("GetByID", ctx, int64(42)).Return(nil, party.ErrUserNotFound{ID: 42}).Once()

		_, err := svc.UpdateUser(ctx, 42, party.RoleAgent, "Jane", "Doe", "jane@example.com", "", "")

		assert.ErrorIs(t, err, party.ErrUserNotFound{ID: 42})
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestClientService_CreateClient(t *testing.T) {
	ctx := context.Background()

	t.Run("verifies the assigned agent", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		userRepo := new(MockUserRepository)
		svc := NewClientService(clientRepo, userRepo)

		agentID := int64(2)
		userRepo.On("GetByID", ctx, agentID).Return(&party.User{ID: agentID}, nil).Once()
		clientRepo.On("Create", ctx, mock.AnythingOfType("*party.Client")).Return(nil).Once()

		client, err := svc.CreateClient(ctx, &agentID, "Sam", "Buyer", "", "", party.ClientTypeBuyer)

		require.NoError(t, err)
		assert.Equal(t, &agentID, client.AgentID)
		clientRepo.AssertExpectations(t)
	})

	t.Run("unassigned client skips the agent check", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		userRepo := new(MockUserRepository)
		svc := NewClientService(clientRepo, userRepo)

		clientRepo.On("Create", ctx, mock.AnythingOfType("*party.Client")).Return(nil).Once()

		_, err := svc.CreateClient(ctx, nil, "Sam", "Buyer", "", "", party.ClientTypeRenter)

		require.NoError(t, err)
		userRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("missing agent rejects the client", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		userRepo := new(MockUserRepository)
		svc := NewClientService(clientRepo, userRepo)

		agentID := int64(99)
		userRepo.On("GetByID", ctx, agentID).Return(nil, party.ErrUserNotFound{ID: 99}).Once()

		_, err := svc.CreateClient(ctx, &agentID, "Sam", "Buyer", "", "", party.ClientTypeBuyer)

		assert.ErrorIs(t, err, party.ErrUserNotFound{ID: 99})
		clientRepo.AssertNotCalled(t, "Create")
	})
}
