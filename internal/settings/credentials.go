// SPDX-License-Identifier: MIT
package settings

import (
	"errors"

	"github.com/thatcatcamp/obskit/internal/storage"
)

// Storage keys of the remembered counter credentials.
const (
	APIKeyKey   = "obs-counter-apikey"
	UserIDKey   = "obs-counter-userid"
	RememberKey = "obs-counter-remember"
)

// Credentials are the counter API key and user id. They are only stored when
// Remember is set.
type Credentials struct {
	APIKey   string `json:"apikey"`
	UserID   string `json:"userid"`
	Remember bool   `json:"remember"`
}

// CredentialStore persists counter credentials behind the opt-in flag.
type CredentialStore struct {
	store storage.Store
}

// NewCredentialStore returns a credential store backed by store.
func NewCredentialStore(store storage.Store) *CredentialStore {
	return &CredentialStore{store: store}
}

// Load returns the remembered credentials, or the zero value when the user
// has not opted in.
func (c *CredentialStore) Load() (Credentials, error) {
	remember, err := c.store.Get(RememberKey)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && remember != "true") {
		return Credentials{}, nil
	}
	if err != nil {
		return Credentials{}, err
	}

	creds := Credentials{Remember: true}
	if creds.APIKey, err = c.get(APIKeyKey); err != nil {
		return Credentials{}, err
	}
	if creds.UserID, err = c.get(UserIDKey); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

func (c *CredentialStore) get(key string) (string, error) {
	v, err := c.store.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	return v, err
}

// Save stores creds when Remember is set. Saving with Remember unset forgets
// anything stored before.
func (c *CredentialStore) Save(creds Credentials) error {
	if !creds.Remember {
		return c.Clear()
	}
	if err := c.store.Set(APIKeyKey, creds.APIKey); err != nil {
		return err
	}
	if err := c.store.Set(UserIDKey, creds.UserID); err != nil {
		return err
	}
	return c.store.Set(RememberKey, "true")
}

// Clear removes every stored credential.
func (c *CredentialStore) Clear() error {
	return errors.Join(
		c.store.Delete(APIKeyKey),
		c.store.Delete(UserIDKey),
		c.store.Delete(RememberKey),
	)
}
