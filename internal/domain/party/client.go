package party

import "time"

// ClientType categorizes what a client is looking for
type ClientType string

const (
	ClientTypeBuyer  ClientType = "buyer"
	ClientTypeSeller ClientType = "seller"
	ClientTypeRenter ClientType = "renter"
)

// Client represents a person the office represents. A client may be assigned
// to an agent; the assignment survives agent deletion (agent id nulled out).
type Client struct {
	ID         int64      `json:"id"`
	AgentID    *int64     `json:"agent_id,omitempty"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	ClientType ClientType `json:"client_type"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewClient creates a client after validating the required fields
func NewClient(agentID *int64, firstName, lastName, email, phone string, clientType ClientType) (*Client, error) {
	if firstName == "" || lastName == "" {
		return nil, ErrEmptyName
	}
	switch clientType {
	case ClientTypeBuyer, ClientTypeSeller, ClientTypeRenter:
	default:
		return nil, ErrInvalidClient
	}

	return &Client{
		AgentID:    agentID,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Phone:      phone,
		ClientType: clientType,
		CreatedAt:  time.Now(),
	}, nil
}

// FullName returns the display name used across the console
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
