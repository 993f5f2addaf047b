package cinemenu

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Settings keys for the three secrets. Each doubles as the environment
// variable name.
const (
	AccountIDKey   = "ACCOUNT_ID"
	AccessTokenKey = "ACCESS_TOKEN"
	APIKeyKey      = "API_KEY"
)

// Credentials are loaded once at startup and never change afterwards
type Credentials struct {
	AccountID   string `yaml:"account_id"`
	AccessToken string `yaml:"-"`
	APIKey      string `yaml:"-"`
}

// Validate fails with the names of every missing secret
func (c Credentials) Validate() error {
	var missing []string
	if c.AccountID == "" {
		missing = append(missing, AccountIDKey)
	}
	if c.AccessToken == "" {
		missing = append(missing, AccessTokenKey)
	}
	if c.APIKey == "" {
		missing = append(missing, APIKeyKey)
	}
	if len(missing) > 0 {
		return fmt.Errorf("Missing the following settings: %v", missing)
	}
	return nil
}

// NewCredentialsWithViper pulls the secrets out of an already configured viper
// (flags, environment, env file or config file, whichever viper resolves first)
func NewCredentialsWithViper(v *viper.Viper) (Credentials, error) {
	c := Credentials{
		AccountID:   v.GetString(AccountIDKey),
		AccessToken: v.GetString(AccessTokenKey),
		APIKey:      v.GetString(APIKeyKey),
	}
	if err := c.Validate(); err != nil {
		return Credentials{}, err
	}
	return c, nil
}

// MergeEnvFile reads a dotenv style file into v. A missing file is not an
// error, the environment may already carry everything.
func MergeEnvFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	ev := viper.New()
	ev.SetConfigFile(path)
	ev.SetConfigType("env")
	if err := ev.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading env file %v: %w", path, err)
	}
	for _, k := range []string{AccountIDKey, AccessTokenKey, APIKeyKey} {
		if ev.IsSet(k) && v.GetString(k) == "" {
			v.Set(k, ev.GetString(k))
		}
	}
	return nil
}
