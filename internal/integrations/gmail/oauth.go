package gmail

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scopes requested on connect: send mail as the user and read threads
// for reply reconciliation.
var scopes = []string{
	"https://www.googleapis.com/auth/gmail.send",
	"https://www.googleapis.com/auth/gmail.readonly",
	"https://www.googleapis.com/auth/userinfo.email",
}

// OAuthProvider wraps golang.org/x/oauth2 for the Google
// authorization-code flow used to connect a Gmail account.
type OAuthProvider struct {
	config *oauth2.Config
}

func NewOAuthProvider(clientID, clientSecret, redirectURL string) *OAuthProvider {
	return &OAuthProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
	}
}

// AuthURL builds the consent URL. access_type=offline asks Google for
// a refresh token; prompt=consent forces one even on re-connects.
func (p *OAuthProvider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades the callback code for a token. The refresh token is
// what gets persisted on the user record.
func (p *OAuthProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging oauth code: %w", err)
	}
	if token.RefreshToken == "" {
		return nil, fmt.Errorf("google did not return a refresh token")
	}
	return token, nil
}

// HTTPClient returns an http client whose transport refreshes the
// access token from the stored refresh token as needed.
func (p *OAuthProvider) HTTPClient(ctx context.Context, refreshToken string) *http.Client {
	token := &oauth2.Token{RefreshToken: refreshToken}
	return p.config.Client(ctx, token)
}

// UserEmail resolves the connected account's address after exchange.
func (p *OAuthProvider) UserEmail(ctx context.Context, token *oauth2.Token) (string, error) {
	client := p.config.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return "", fmt.Errorf("fetching userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("userinfo request failed: %d", resp.StatusCode)
	}

	var info struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", err
	}
	return info.Email, nil
}
