package dto

import (
	"time"

	"github.com/finserv-tools/bank_management_app/internal/core/domain"
)

// CreateClientRequest defines the data needed to register a new client.
type CreateClientRequest struct {
	Name           string `json:"name" binding:"required"`
	Gender         string `json:"gender" binding:"required"`
	Age            int    `json:"age" binding:"required,gt=0"`
	Identification string `json:"identification" binding:"required"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Password       string `json:"password" binding:"required,min=8"`
	Status         string `json:"status" binding:"required"`
}

// UpdateClientRequest defines the data allowed for a partial client update.
type UpdateClientRequest struct {
	Name     *string `json:"name"`
	Gender   *string `json:"gender"`
	Age      *int    `json:"age"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
	Status   *string `json:"status"`
}

// ClientResponse defines the data returned for a client. The password hash is
// never exposed.
type ClientResponse struct {
	ClientID       string    `json:"clientId"`
	Name           string    `json:"name"`
	Gender         string    `json:"gender"`
	Age            int       `json:"age"`
	Identification string    `json:"identification"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
}

// ToClientResponse converts a domain.Client to ClientResponse.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:       c.ClientID,
		Name:           c.Name,
		Gender:         c.Gender.Code,
		Age:            c.Age,
		Identification: c.Identification,
		Address:        c.Address,
		Phone:          c.Phone,
		Status:         c.Status.Code,
		CreatedAt:      c.CreatedAt,
		LastUpdatedAt:  c.LastUpdatedAt,
	}
}

// ToClientResponses converts a slice of domain clients to response DTOs.
func ToClientResponses(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i, c := range clients {
		res[i] = ToClientResponse(&c)
	}
	return res
}
