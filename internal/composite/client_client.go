package composite

import (
	"context"
	"fmt"
	"net/url"

	"github.com/finserv-tools/bank_management_app/internal/dto"
)

// ClientServiceClient calls the client service HTTP API.
type ClientServiceClient struct {
	httpCaller
}

// NewClientServiceClient creates a client against the client service base URL.
func NewClientServiceClient(baseURL string) *ClientServiceClient {
	return &ClientServiceClient{newHTTPCaller(baseURL)}
}

// GetClient fetches a client by its ID.
func (c *ClientServiceClient) GetClient(ctx context.Context, clientID string) (*dto.ClientResponse, error) {
	var client dto.ClientResponse
	path := "/api/v1/clients/" + url.PathEscape(clientID)
	if err := c.getJSON(ctx, path, &client); err != nil {
		return nil, fmt.Errorf("failed to fetch client %s: %w", clientID, err)
	}
	return &client, nil
}
