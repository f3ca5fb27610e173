package ports

import "context"

// User is the identity record returned by the identity provider.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// AuthResult carries the outcome of an identity operation. Failures are
// reported through Success=false and a human-readable Message rather than an
// error value; callers pass the message through unchanged.
type AuthResult struct {
	Success bool
	User    *User
	Message string
}

// IdentityProvider is the remote authentication service. Sonora does not
// ship an implementation.
type IdentityProvider interface {
	Register(ctx context.Context, email, password, username string) AuthResult
	Login(ctx context.Context, email, password string) AuthResult
	Logout(ctx context.Context) AuthResult
	CurrentUser(ctx context.Context) AuthResult
}

// TokenSource yields the bearer token of the active session.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// ModelConfig is the model-provider selection stored remotely per user.
type ModelConfig struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	APIKey   string `json:"apiKey"`
}

// ModelConfigStore persists ModelConfig remotely. Get returns (nil, nil)
// when no configuration exists yet.
type ModelConfigStore interface {
	Get(ctx context.Context) (*ModelConfig, error)
	Save(ctx context.Context, cfg ModelConfig) error
	Delete(ctx context.Context) error
}
