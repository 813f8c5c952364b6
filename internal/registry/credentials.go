package registry

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/royaltyguard/royalty-checker/internal/adapter"
)

// CredentialRegistry defines the interface for API key lookups
//
//go:generate mockgen -source=credentials.go -destination=../mocks/credential_registry.go -package=mocks -mock_names=CredentialRegistry=MockCredentialRegistry
type CredentialRegistry interface {
	// IsValidAPIKey checks if key is one of the configured API keys
	IsValidAPIKey(key string) bool

	// Len returns the number of configured keys
	Len() int
}

// CredentialData represents the structure of the API keys file
type CredentialData struct {
	APIKeys []string `json:"api_keys"`
}

// credentialRegistry is the internal implementation of CredentialRegistry interface
type credentialRegistry struct {
	keys [][]byte
}

// NewCredentialRegistry builds a registry from in-memory keys. Blank and duplicate keys are dropped.
func NewCredentialRegistry(keys []string) CredentialRegistry {
	seen := make(map[string]bool, len(keys))
	r := &credentialRegistry{}
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		r.keys = append(r.keys, []byte(k))
	}
	return r
}

// IsValidAPIKey compares key against every configured key in constant time
func (r *credentialRegistry) IsValidAPIKey(key string) bool {
	if r == nil || key == "" {
		return false
	}
	candidate := []byte(key)
	valid := false
	for _, k := range r.keys {
		if subtle.ConstantTimeCompare(k, candidate) == 1 {
			valid = true
		}
	}
	return valid
}

func (r *credentialRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// CredentialRegistryLoader defines the interface for loading credential registries from files
//
//go:generate mockgen -source=credentials.go -destination=../mocks/credential_registry.go -package=mocks -mock_names=CredentialRegistryLoader=MockCredentialRegistryLoader
type CredentialRegistryLoader interface {
	// Load merges the keys of the JSON file at filePath with staticKeys.
	// An empty filePath loads staticKeys only.
	Load(filePath string, staticKeys []string) (CredentialRegistry, error)
}

type credentialRegistryLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewCredentialRegistryLoader creates a new CredentialRegistryLoader with injected dependencies
func NewCredentialRegistryLoader(fs adapter.FileSystem, json adapter.JSON) CredentialRegistryLoader {
	return &credentialRegistryLoader{
		fs:   fs,
		json: json,
	}
}

// Load reads the API keys file and merges it with staticKeys
func (l *credentialRegistryLoader) Load(filePath string, staticKeys []string) (CredentialRegistry, error) {
	if filePath == "" {
		return NewCredentialRegistry(staticKeys), nil
	}

	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read API keys file: %w", err)
	}

	var creds CredentialData
	if err := l.json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse API keys JSON: %w", err)
	}

	keys := make([]string, 0, len(staticKeys)+len(creds.APIKeys))
	keys = append(keys, staticKeys...)
	keys = append(keys, creds.APIKeys...)
	return NewCredentialRegistry(keys), nil
}
