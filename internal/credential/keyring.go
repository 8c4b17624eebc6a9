// Package credential remembers the last logged-in username in the OS
// keyring so the login form can prefill it. Keyring failures are
// expected on headless setups and never fatal.
package credential

import (
	"fmt"

	"github.com/99designs/keyring"
)

const (
	serviceName     = "checklist"
	lastUsernameKey = "last-username"
)

// openKeyring returns a configured keyring instance.
func openKeyring() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/checklist/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("checklist-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// RememberUsername stores username as the last successful login.
func RememberUsername(username string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	err = ring.Set(keyring.Item{
		Key:  lastUsernameKey,
		Data: []byte(username),
	})
	if err != nil {
		return fmt.Errorf("remembering username: %w", err)
	}

	return nil
}

// LastUsername returns the most recently remembered username, or an
// empty string when none is stored.
func LastUsername() string {
	ring, err := openKeyring()
	if err != nil {
		return ""
	}

	item, err := ring.Get(lastUsernameKey)
	if err != nil {
		return ""
	}

	return string(item.Data)
}

// Forget removes the remembered username, if any.
func Forget() error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	if err := ring.Remove(lastUsernameKey); err != nil {
		return fmt.Errorf("forgetting username: %w", err)
	}

	return nil
}
