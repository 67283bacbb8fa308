package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/barberia-app/barberia-api/internal/apperr"
)

// ExternalIdentity is what an identity provider asserts about a signer.
type ExternalIdentity struct {
	SubjectID  string
	Email      string
	GivenName  string
	FamilyName string
}

// IdentityVerifier validates a provider-issued id token for the expected
// audience.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken, audience string) (*ExternalIdentity, error)
}

const tokeninfoEndpoint = "https://oauth2.googleapis.com/tokeninfo"

// GoogleVerifier checks Google id tokens against the tokeninfo endpoint.
type GoogleVerifier struct {
	client *http.Client
}

func NewGoogleVerifier() *GoogleVerifier {
	return &GoogleVerifier{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *GoogleVerifier) Verify(ctx context.Context, idToken, audience string) (*ExternalIdentity, error) {
	endpoint := tokeninfoEndpoint + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google tokeninfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Unauthorized("invalid Google identity token")
	}

	var payload struct {
		Sub        string `json:"sub"`
		Aud        string `json:"aud"`
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("google tokeninfo decode: %w", err)
	}

	if payload.Aud != audience || payload.Sub == "" || payload.Email == "" {
		return nil, apperr.Unauthorized("invalid Google identity token")
	}

	return &ExternalIdentity{
		SubjectID:  payload.Sub,
		Email:      payload.Email,
		GivenName:  payload.GivenName,
		FamilyName: payload.FamilyName,
	}, nil
}
