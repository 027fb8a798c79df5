package highlevel

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
)

// tokenSavingSource wraps an oauth2.TokenSource and saves every refreshed
// token to disk
type tokenSavingSource struct {
	source    oauth2.TokenSource
	tokenPath string
	lastToken *oauth2.Token
}

// Token returns a valid token, refreshing if necessary and saving to disk
func (t *tokenSavingSource) Token() (*oauth2.Token, error) {
	token, err := t.source.Token()
	if err != nil {
		return nil, err
	}

	if t.lastToken == nil || t.lastToken.AccessToken != token.AccessToken {
		// A failed save keeps the request going; the next refresh retries it
		if err := saveToken(t.tokenPath, token); err != nil {
			log.Printf("[HIGHLEVEL]: failed to save refreshed token: %v", err)
		}
		t.lastToken = token
	}

	return token, nil
}

// loadToken reads a token saved by saveToken. A missing file is not an error
func loadToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read token: %w", err)
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, fmt.Errorf("unable to parse token %s: %w", path, err)
	}
	return token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to save token: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(token)
}
