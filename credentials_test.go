package cinemenu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestCredentialsValidate(t *testing.T) {
	tests := map[string]struct {
		creds   Credentials
		wantErr string
	}{
		"good": {
			creds: fakeCredentials,
		},
		"missing token": {
			creds:   Credentials{AccountID: "1", APIKey: "k"},
			wantErr: "Missing the following settings: [ACCESS_TOKEN]",
		},
		"empty": {
			creds:   Credentials{},
			wantErr: "Missing the following settings: [ACCOUNT_ID ACCESS_TOKEN API_KEY]",
		},
	}
	for k, tt := range tests {
		err := tt.creds.Validate()
		if tt.wantErr != "" {
			require.EqualError(t, err, tt.wantErr, k)
		} else {
			require.NoError(t, err, k)
		}
	}
}

func TestNewCredentialsWithViperEnv(t *testing.T) {
	t.Setenv("ACCOUNT_ID", "12345")
	t.Setenv("ACCESS_TOKEN", "fake-token")
	t.Setenv("API_KEY", "fake-key")
	v := viper.New()
	v.AutomaticEnv()

	got, err := NewCredentialsWithViper(v)
	require.NoError(t, err)
	require.Equal(t, fakeCredentials, got)
}

func TestNewCredentialsWithViperMissing(t *testing.T) {
	v := viper.New()
	v.Set("ACCOUNT_ID", "12345")

	_, err := NewCredentialsWithViper(v)
	require.EqualError(t, err, "Missing the following settings: [ACCESS_TOKEN API_KEY]")
}

func TestMergeEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ACCOUNT_ID=999\nACCESS_TOKEN=fake-token\nAPI_KEY=fake-key\n"), 0o600))

	v := viper.New()
	v.Set("ACCOUNT_ID", "12345")
	require.NoError(t, MergeEnvFile(v, path))

	got, err := NewCredentialsWithViper(v)
	require.NoError(t, err)
	require.Equal(t, "12345", got.AccountID, "values already set win over the env file")
	require.Equal(t, "fake-token", got.AccessToken)
	require.Equal(t, "fake-key", got.APIKey)
}

func TestMergeEnvFileMissing(t *testing.T) {
	v := viper.New()
	require.NoError(t, MergeEnvFile(v, filepath.Join(t.TempDir(), "nope.env")))
	require.NoError(t, MergeEnvFile(v, ""))
}
