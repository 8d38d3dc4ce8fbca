package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

const apiKeyName = "API_KEY"

type CredentialSource string

const (
	SourceNone    CredentialSource = "none"
	SourceSecrets CredentialSource = "secrets"
	SourceEnv     CredentialSource = "env"
)

// Credential is the provider API key. It is resolved once at start-up and
// handed to the forecast repository; nothing reads it from the environment later.
type Credential struct {
	APIKey string
	Source CredentialSource
}

func (c Credential) Present() bool {
	return c.APIKey != ""
}

// String keeps the key out of logs.
func (c Credential) String() string {
	return fmt.Sprintf("Credential(source=%s, present=%t)", c.Source, c.Present())
}

type secrets struct {
	APIKey string `toml:"API_KEY"`
}

// LoadCredential checks the TOML secrets store first and falls back to the
// API_KEY environment variable. An unreadable store counts as empty; an
// absent key is not an error.
func LoadCredential(secretsFile string, lookupEnv func(string) (string, bool)) Credential {
	if secretsFile != "" {
		var s secrets
		if _, err := toml.DecodeFile(secretsFile, &s); err == nil && s.APIKey != "" {
			return Credential{APIKey: s.APIKey, Source: SourceSecrets}
		}
	}

	if lookupEnv != nil {
		if v, ok := lookupEnv(apiKeyName); ok && v != "" {
			return Credential{APIKey: v, Source: SourceEnv}
		}
	}

	return Credential{Source: SourceNone}
}
