package forgegate

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/stretchr/testify/assert"

	"github.com/forgegate/forgegate/config"
)

type StringReadCloser struct {
	*strings.Reader
}

func (src *StringReadCloser) Close() error {
	return nil
}

type MockHTTPClient struct {
	DoDo func(req *http.Request) (*http.Response, error)
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	if m.DoDo != nil {
		return m.DoDo(req)
	}
	return &http.Response{}, nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       &StringReadCloser{strings.NewReader(body)},
	}
}

func testConfig() *config.Config {
	cfg := config.New()
	cfg.App.Host = "http://localhost:8077"
	cfg.GitHubOauth.ClientID = "development"
	cfg.GitHubOauth.ClientSecret = "development-secret"
	return cfg
}

func testApp(cfg *config.Config, client HttpClient) *app {
	a := &app{cfg: cfg}
	a.formDecoder = schema.NewDecoder()
	a.formDecoder.IgnoreUnknownKeys(true)
	gh := newGitHubClient(cfg)
	gh.HttpClient = client
	a.oauthClient = gh
	return a
}

func testRouter(a *app) *mux.Router {
	r := mux.NewRouter()
	InitRoutes(a, r)
	return r
}

func TestBuildLoginURL(t *testing.T) {
	cfg := testConfig()
	c := newGitHubClient(cfg)

	assert.Equal(t, "github", c.GetProvider())
	assert.Equal(t, "development", c.GetClientID())
	assert.Equal(t, "http://localhost:8077/callback", c.GetCallbackLocation())

	loc, err := c.buildLoginURL("st8")
	assert.NoError(t, err)
	assert.Contains(t, loc, "https://github.com/login/oauth/authorize?")
	assert.Contains(t, loc, "client_id=development")
	assert.Contains(t, loc, "state=st8")
}

func TestExchangeOauthCode(t *testing.T) {
	cfg := testConfig()

	t.Run("success", func(t *testing.T) {
		c := newGitHubClient(cfg)
		c.HttpClient = &MockHTTPClient{
			DoDo: func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "https://github.com/login/oauth/access_token", req.URL.String())
				assert.Equal(t, "application/json", req.Header.Get("Accept"))
				assert.NoError(t, req.ParseForm())
				assert.Equal(t, "development", req.PostForm.Get("client_id"))
				assert.Equal(t, "development-secret", req.PostForm.Get("client_secret"))
				assert.Equal(t, "abc123", req.PostForm.Get("code"))
				assert.Equal(t, "http://localhost:8077/callback", req.PostForm.Get("redirect_uri"))
				return jsonResponse(200, `{"access_token": "T", "token_type": "bearer", "scope": "repo"}`), nil
			},
		}

		tok, err := c.exchangeOauthCode(context.Background(), "abc123")
		assert.NoError(t, err)
		assert.Equal(t, "T", tok.AccessToken)
		assert.Equal(t, "bearer", tok.TokenType)
		assert.Equal(t, "repo", tok.Scope)
	})

	t.Run("provider error body passes through", func(t *testing.T) {
		c := newGitHubClient(cfg)
		c.HttpClient = &MockHTTPClient{
			DoDo: func(req *http.Request) (*http.Response, error) {
				return jsonResponse(200, `{"error": "bad_verification_code", "error_description": "The code passed is incorrect or expired."}`), nil
			},
		}

		tok, err := c.exchangeOauthCode(context.Background(), "expired")
		assert.NoError(t, err)
		assert.Empty(t, tok.AccessToken)
		assert.Equal(t, "bad_verification_code", tok.Error)
		assert.NotEmpty(t, tok.ErrorDescription)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		c := newGitHubClient(cfg)
		c.HttpClient = &MockHTTPClient{
			DoDo: func(req *http.Request) (*http.Response, error) {
				return jsonResponse(502, `bad gateway`), nil
			},
		}

		_, err := c.exchangeOauthCode(context.Background(), "abc123")
		assert.Error(t, err)
	})

	t.Run("transport failure", func(t *testing.T) {
		c := newGitHubClient(cfg)
		c.HttpClient = &MockHTTPClient{
			DoDo: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
		}

		_, err := c.exchangeOauthCode(context.Background(), "abc123")
		assert.Error(t, err)
	})
}
