package realtime

import (
	"testing"
)

func TestResolveConfig_ExplicitValues(t *testing.T) {
	cfg := Config{
		BaseURL: "https://api.irepair.example",
		Tokens:  StaticToken("tok"),
		UserID:  "staff-1",
	}

	resolved, err := resolveConfig(cfg)
	if err != nil {
		t.Fatalf("resolveConfig() error: %v", err)
	}
	if resolved.BaseURL != "https://api.irepair.example" {
		t.Errorf("BaseURL = %q, want explicit value", resolved.BaseURL)
	}
	if resolved.UserID != "staff-1" {
		t.Errorf("UserID = %q, want staff-1", resolved.UserID)
	}
	tok, _ := resolved.Tokens.Token()
	if tok != "tok" {
		t.Errorf("Token() = %q, want tok", tok)
	}
}

func TestResolveConfig_EnvFallback(t *testing.T) {
	t.Setenv("IREPAIR_BASE_URL", "https://env.irepair.example")
	t.Setenv("IREPAIR_AUTH_TOKEN", "env-token")
	t.Setenv("IREPAIR_USER_ID", "staff-env")

	resolved, err := resolveConfig(Config{})
	if err != nil {
		t.Fatalf("resolveConfig() error: %v", err)
	}
	if resolved.BaseURL != "https://env.irepair.example" {
		t.Errorf("BaseURL = %q, want env value", resolved.BaseURL)
	}
	if resolved.UserID != "staff-env" {
		t.Errorf("UserID = %q, want env value", resolved.UserID)
	}
	tok, err := resolved.Tokens.Token()
	if err != nil {
		t.Fatalf("Token() error: %v", err)
	}
	if tok != "env-token" {
		t.Errorf("Token() = %q, want env value", tok)
	}
}

func TestResolveConfig_ExplicitOverridesEnv(t *testing.T) {
	t.Setenv("IREPAIR_BASE_URL", "https://env.irepair.example")

	resolved, err := resolveConfig(Config{BaseURL: "https://explicit.irepair.example"})
	if err != nil {
		t.Fatalf("resolveConfig() error: %v", err)
	}
	if resolved.BaseURL != "https://explicit.irepair.example" {
		t.Errorf("BaseURL = %q, want explicit value over env", resolved.BaseURL)
	}
}

func TestResolveConfig_MissingBaseURL(t *testing.T) {
	_, err := resolveConfig(Config{})
	if err == nil {
		t.Fatal("resolveConfig() should error when BaseURL is missing")
	}
}

func TestResolveConfig_EmptyUserID_IsAllowed(t *testing.T) {
	resolved, err := resolveConfig(Config{BaseURL: "https://api.irepair.example"})
	if err != nil {
		t.Fatalf("resolveConfig() should allow empty UserID: %v", err)
	}
	if resolved.UserID != "" {
		t.Errorf("UserID should remain empty, got %q", resolved.UserID)
	}
}

func TestTokenSources(t *testing.T) {
	tok, err := StaticToken("abc").Token()
	if err != nil || tok != "abc" {
		t.Errorf("StaticToken Token() = %q, %v, want abc, nil", tok, err)
	}

	t.Setenv("IREPAIR_TEST_TOKEN", "from-env")
	tok, err = EnvToken("IREPAIR_TEST_TOKEN").Token()
	if err != nil || tok != "from-env" {
		t.Errorf("EnvToken Token() = %q, %v, want from-env, nil", tok, err)
	}

	tok, err = EnvToken("IREPAIR_TEST_TOKEN_UNSET").Token()
	if err != nil || tok != "" {
		t.Errorf("EnvToken Token() for unset var = %q, %v, want empty, nil", tok, err)
	}
}
