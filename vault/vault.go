package vault

import (
	"errors"
	"fmt"

	"github.com/hashicorp/vault/api"
)

var ErrSecretNotFound = errors.New("secret not found")

// Vault reads the service's secrets from a single KV path. Both KV v1 and the
// nested data layout of KV v2 are understood.
type Vault struct {
	SecretPath string
	*api.Client
}

func New(token, address, secretPath string) (*Vault, error) {
	config := &api.Config{
		Address: address,
	}

	client, err := api.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("new: error initializing vault: %w", err)
	}

	client.SetToken(token)

	status, err := client.Sys().SealStatus()
	if err != nil {
		return nil, fmt.Errorf("new: error getting seal status: %w", err)
	}
	if status.Sealed {
		return nil, fmt.Errorf("new: vault at %s is sealed", address)
	}

	return &Vault{SecretPath: secretPath, Client: client}, nil
}

// Secret returns the string stored under field at SecretPath.
func (v *Vault) Secret(field string) (string, error) {
	secret, err := v.Logical().Read(v.SecretPath)
	if err != nil {
		return "", fmt.Errorf("secret: error reading %s: %w", v.SecretPath, err)
	}
	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("secret: %s: %w", v.SecretPath, ErrSecretNotFound)
	}

	data := secret.Data
	if nested, ok := data["data"].(map[string]interface{}); ok {
		data = nested
	}

	value, ok := data[field].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("secret: %s#%s: %w", v.SecretPath, field, ErrSecretNotFound)
	}
	return value, nil
}
