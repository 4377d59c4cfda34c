package config

import "testing"

func TestCredentialsPresent(t *testing.T) {
	t.Setenv(EnvAPIKey, "key")
	t.Setenv(EnvAPISecret, "secret")
	creds := LoadCredentials()
	if !creds.Present() {
		t.Fatalf("expected credentials to be present")
	}

	t.Setenv(EnvAPISecret, "")
	creds = LoadCredentials()
	if creds.Present() {
		t.Fatalf("half a key pair must not count as present")
	}
}
