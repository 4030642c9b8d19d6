package forgegate

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

type githubOauthClient struct {
	ClientID         string
	ClientSecret     string
	AuthLocation     string
	ExchangeLocation string
	CallbackLocation string
	Scope            string
	HttpClient       HttpClient
}

var _ oauthClient = githubOauthClient{}

const githubHost = "https://github.com"

func (c githubOauthClient) GetProvider() string {
	return "github"
}

func (c githubOauthClient) GetClientID() string {
	return c.ClientID
}

func (c githubOauthClient) GetCallbackLocation() string {
	return c.CallbackLocation
}

func (c githubOauthClient) buildLoginURL(state string) (string, error) {
	u, err := url.Parse(c.AuthLocation)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("client_id", c.ClientID)
	q.Set("redirect_uri", c.CallbackLocation)
	q.Set("response_type", "code")
	q.Set("scope", c.Scope)
	q.Set("state", state)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// exchangeOauthCode trades an authorization code for an access token. A
// transport failure or a non-2xx status is returned as an error; a 2xx
// response carrying a provider error body is returned as-is so the caller
// can forward it to the client.
func (c githubOauthClient) exchangeOauthCode(ctx context.Context, code string) (*TokenResponse, error) {
	form := url.Values{}
	form.Add("client_id", c.ClientID)
	form.Add("client_secret", c.ClientSecret)
	form.Add("code", code)
	form.Add("redirect_uri", c.CallbackLocation)
	req, err := http.NewRequestWithContext(ctx, "POST", c.ExchangeLocation, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", ServerUserAgent(""))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("unable to exchange code for access token")
	}

	var tokenResponse TokenResponse
	if err := limitedJsonUnmarshal(resp.Body, tokenRequestMaxLen, &tokenResponse); err != nil {
		return nil, err
	}
	return &tokenResponse, nil
}
