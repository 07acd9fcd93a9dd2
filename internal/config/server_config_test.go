package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/cosmos-wallet/internal/config"
)

func TestPrintServiceEnv(t *testing.T) {
	config := config.DefaultServiceConfigFromEnv()
	_, err := json.MarshalIndent(config, "", "  ")

	if err != nil {
		t.Fatal(err)
	}
}

func TestSecretsAreNotPrinted(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Auth.JWTSecret = "super-secret"
	cfg.Wallet.LocalSignerMnemonic = "word word word"
	cfg.Store.Postgres.Password = "hunter2"

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "super-secret")
	assert.NotContains(t, string(out), "word word word")
	assert.NotContains(t, string(out), "hunter2")
}

func TestDatabaseConnectionString(t *testing.T) {
	db := config.Database{
		Host:     "localhost",
		Port:     5432,
		Username: "user",
		Password: "pw",
		Database: "wallet",
		AdditionalParams: map[string]string{
			"sslmode":          "disable",
			"application_name": "wallet",
		},
	}

	assert.Equal(t, "host=localhost port=5432 user=user password=pw dbname=wallet application_name=wallet sslmode=disable", db.ConnectionString())
	assert.Equal(t, "postgres://user@localhost:5432/wallet", db.Redacted())
}

func TestBuildArgs(t *testing.T) {
	assert.Contains(t, config.GetFormattedBuildArgs(), config.ModuleName)
}
