package forgegate

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateRoundTrip(t *testing.T) {
	in := &DecodedState{
		RedirectURI:         "https://editor.example.com/?post-login",
		ClientState:         "abc",
		ClientID:            "https://client.example/",
		Me:                  "https://me.example/",
		Scope:               "create update",
		CodeChallenge:       "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM",
		CodeChallengeMethod: "S256",
		User:                "octocat",
		Repo:                "blog",
	}

	encoded, err := encodeState(in)
	assert.NoError(t, err)
	assert.NotEmpty(t, encoded)

	out := decodeState(encoded)
	assert.NotNil(t, out)
	assert.Equal(t, in, out)
}

func TestStateRoundTripMinimal(t *testing.T) {
	in := &DecodedState{RedirectURI: "https://editor.example.com/"}

	encoded, err := encodeState(in)
	assert.NoError(t, err)

	out := decodeState(encoded)
	assert.NotNil(t, out)
	assert.Equal(t, in, out)
}

func TestDecodeStateMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not base64", "not-valid-base64-or-json!!!"},
		{"base64 of non-JSON", base64.URLEncoding.EncodeToString([]byte("not json"))},
		{"empty", ""},
		{"truncated blob", base64.URLEncoding.EncodeToString([]byte(`{"redirectUri":"ht`))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, decodeState(tt.raw))
		})
	}
}
