package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/authorizerdev/authorizer-go"
	"github.com/lorekeep/lorekeep/internal/config"
	"github.com/lorekeep/lorekeep/internal/utils"
)

var (
	authClient *authorizer.AuthorizerClient
	authOnce   sync.Once
)

// Identity is the subset of the authorizer user profile this service relies
// on.
type Identity struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	PreferredUsername string `json:"preferred_username"`
	Nickname          string `json:"nickname"`
}

// Username picks the best display name the identity carries.
func (i *Identity) Username() string {
	switch {
	case i.PreferredUsername != "":
		return i.PreferredUsername
	case i.Nickname != "":
		return i.Nickname
	default:
		return i.Email
	}
}

// IsAuthorizerInitialized returns true if the Authorizer client is initialized
func IsAuthorizerInitialized() bool {
	return authClient != nil
}

// InitAuthorizer initializes the Authorizer client (singleton pattern)
func InitAuthorizer(cfg *config.Config, requestProtocol, requestHost string) error {
	var initErr error

	authOnce.Do(func() {
		// Ping the Authorizer service first
		if err := utils.PingAuthorizer(cfg.AuthzURL); err != nil {
			initErr = fmt.Errorf("authorizer ping failed: %w", err)
			return
		}

		redirectURL := fmt.Sprintf("%s://%s", requestProtocol, requestHost)
		log.Printf("Initializing Authorizer: authorizerURL=%s, clientID=%s, redirectURL=%s",
			cfg.AuthzURL, cfg.AuthzClientID, redirectURL)

		var err error
		authClient, err = authorizer.NewAuthorizerClient(cfg.AuthzClientID, cfg.AuthzURL, redirectURL, nil)
		if err != nil {
			initErr = fmt.Errorf("failed to create authorizer client: %w", err)
			return
		}
	})

	return initErr
}

// ValidateSession validates a session cookie for the given roles and returns
// the authenticated identity.
func ValidateSession(cookie string, roles []string) (*Identity, error) {
	if authClient == nil {
		return nil, fmt.Errorf("authorizer client not initialized")
	}

	rolesPtrs := make([]*string, len(roles))
	for i := range roles {
		rolesPtrs[i] = &roles[i]
	}

	res, err := authClient.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
		Roles:  rolesPtrs,
	})
	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}

	if res == nil || !res.IsValid {
		return nil, fmt.Errorf("session is not valid")
	}

	// The SDK's user shape varies between authorizer versions; a JSON
	// round-trip extracts only the fields this service needs.
	raw, err := json.Marshal(res.User)
	if err != nil {
		return nil, fmt.Errorf("failed to read session user: %w", err)
	}
	var identity Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, fmt.Errorf("failed to read session user: %w", err)
	}
	if identity.Email == "" {
		return nil, fmt.Errorf("session user has no email")
	}

	return &identity, nil
}

// Signup registers a new account with the authorizer service.
func Signup(email, password string) error {
	if authClient == nil {
		return fmt.Errorf("authorizer client not initialized")
	}

	_, err := authClient.SignUp(&authorizer.SignUpInput{
		Email:           &email,
		Password:        password,
		ConfirmPassword: password,
	})
	if err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}
	return nil
}

// Login authenticates against the authorizer service and returns the access
// token.
func Login(email, password string) (string, error) {
	if authClient == nil {
		return "", fmt.Errorf("authorizer client not initialized")
	}

	res, err := authClient.Login(&authorizer.LoginInput{
		Email:    &email,
		Password: password,
	})
	if err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}
	if res == nil || res.AccessToken == nil {
		return "", fmt.Errorf("login returned no token")
	}
	return *res.AccessToken, nil
}
