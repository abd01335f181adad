package infrastructure

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/ticketera/ticket-platform/orchestration-service/domain"
)

var _ domain.UserPort = (*UserClient)(nil)

// UserClient implements UserPort against the user service
type UserClient struct {
	http *jsonClient
}

// NewUserClient creates a new UserClient
func NewUserClient(baseURL string, timeout time.Duration) *UserClient {
	return &UserClient{http: newJSONClient("user-service", baseURL, timeout)}
}

type registerUserResponse struct {
	Success *bool  `json:"exitoso"`
	Message string `json:"mensaje"`
	ID      int64  `json:"id"`
	UserID  int64  `json:"usuarioId"`
	Name    string `json:"nombre"`
	Email   string `json:"email"`
	Token   string `json:"token"`
}

// RegisterUser creates the account. A refusal (exitoso=false or 4xx) is an
// invalid request carrying the service's message.
func (c *UserClient) RegisterUser(ctx context.Context, req domain.RegisterUserRequest) (*domain.User, error) {
	r := request{
		method: http.MethodPost,
		path:   "/api/users/register",
		body:   req,
	}

	resp, err := c.http.do(ctx, r)
	if err != nil {
		return nil, err
	}

	var body registerUserResponse
	decodeErr := resp.decode(&body)

	switch {
	case resp.statusCode >= 400 && resp.statusCode < 500:
		return nil, &domain.RequestRejectedError{Message: errorMessage(resp.body)}
	case !resp.ok():
		return nil, c.http.statusError(r, resp)
	case decodeErr != nil:
		return nil, errors.Wrap(decodeErr, "failed to decode user response")
	case body.Success != nil && !*body.Success:
		return nil, &domain.RequestRejectedError{Message: body.Message}
	}

	user := &domain.User{
		ID:    body.ID,
		Name:  body.Name,
		Email: body.Email,
		Token: body.Token,
	}
	if user.ID == 0 {
		user.ID = body.UserID
	}
	if user.Email == "" {
		user.Email = req.Email
	}
	if user.Name == "" {
		user.Name = req.Name
	}

	return user, nil
}
