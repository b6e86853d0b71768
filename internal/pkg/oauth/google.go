package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/crewlabs/crew-backend-go/internal/pkg/token"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleService wraps the OAuth2 code flow against Google.
type GoogleService interface {
	// GenerateState generates a random state string for the OAuth2 flow.
	GenerateState() (string, error)
	// RedirectURL builds the consent screen URL carrying the state.
	RedirectURL(state string) string
	// Exchange trades the authorization code for a token.
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	// FetchUser retrieves the Google account information for a token.
	FetchUser(ctx context.Context, tok *oauth2.Token) (GoogleAccount, error)
}

type GoogleAccount struct {
	GoogleID      string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	VerifiedEmail bool   `json:"verified_email"`
}

type googleServiceImpl struct {
	config *oauth2.Config
}

func NewGoogleService(clientID, clientSecret, redirectURL string, scopes []string) GoogleService {
	return &googleServiceImpl{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
	}
}

func (g *googleServiceImpl) GenerateState() (string, error) {
	return token.Generate(32)
}

func (g *googleServiceImpl) RedirectURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (g *googleServiceImpl) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return g.config.Exchange(ctx, code)
}

func (g *googleServiceImpl) FetchUser(ctx context.Context, tok *oauth2.Token) (GoogleAccount, error) {
	client := g.config.Client(ctx, tok)

	resp, err := client.Get(userInfoURL)
	if err != nil {
		return GoogleAccount{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GoogleAccount{}, fmt.Errorf("userinfo request failed with status %d", resp.StatusCode)
	}

	var account GoogleAccount
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return GoogleAccount{}, err
	}

	return account, nil
}
