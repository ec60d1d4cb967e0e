package attack

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

func TestCreateTargeter(t *testing.T) {
	targeter, err := CreateTargeter("http://localhost:8080", `key"with"quotes`)
	require.NoError(t, err)

	var first, second vegeta.Target
	require.NoError(t, targeter(&first))
	require.NoError(t, targeter(&second))

	assert.Equal(t, http.MethodPost, first.Method)
	assert.Equal(t, "http://localhost:8080/url", first.URL)

	var body struct {
		TargetURL string `json:"target_url"`
		APIKey    string `json:"api_key"`
	}
	require.NoError(t, json.Unmarshal(first.Body, &body))
	assert.Equal(t, `key"with"quotes`, body.APIKey)
	assert.NotEqual(t, string(first.Body), string(second.Body))
}

func TestRedirectTargeter(t *testing.T) {
	targeter := RedirectTargeter("http://localhost:8080", []string{"abc"})

	var tgt vegeta.Target
	require.NoError(t, targeter(&tgt))

	assert.Equal(t, http.MethodGet, tgt.Method)
	assert.Equal(t, "http://localhost:8080/abc", tgt.URL)
	assert.Nil(t, tgt.Body)
}
