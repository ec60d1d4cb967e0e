package attack

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var urlCounter atomic.Uint64

// CreateTargeter posts a fresh target URL on every hit so that each request
// draws a new key from the pool.
func CreateTargeter(baseURL, apiKey string) (vegeta.Targeter, error) {
	header := http.Header{"Content-Type": []string{"application/json"}}
	quotedKey, err := json.Marshal(apiKey)
	if err != nil {
		return nil, err
	}
	url := baseURL + "/url"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = url
		t.Header = header
		t.Body = fmt.Appendf(nil, `{"target_url":"https://example.com/bench/%d","api_key":%s}`, urlCounter.Add(1), quotedKey)
		return nil
	}, nil
}

func RedirectTargeter(baseURL string, keys []string) vegeta.Targeter {
	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = baseURL + "/" + keys[rand.IntN(len(keys))]
		t.Header = nil
		t.Body = nil
		return nil
	}
}

func MixedTargeter(createTarget, redirectTarget vegeta.Targeter, createRatio float64) vegeta.Targeter {
	return func(t *vegeta.Target) error {
		if rand.Float64() < createRatio {
			return createTarget(t)
		}
		return redirectTarget(t)
	}
}
