package auth

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestSetGetDeleteToken(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvToken, "")

	ti, err := GetToken()
	if err != nil || ti != nil {
		t.Fatalf("fresh home: ti=%v err=%v", ti, err)
	}

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := signed(t, jwt.MapClaims{"sub": "idil", "exp": exp.Unix()})
	if _, err := SetToken("Bearer " + tok); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	p, _ := CredentialsPath()
	st, err := os.Stat(p)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if st.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v", st.Mode().Perm())
	}

	ti, err = GetToken()
	if err != nil {
		t.Fatalf("GetToken: %v", err)
	}
	if ti.Token != tok || ti.Source != "file" {
		t.Fatalf("got %+v", ti)
	}
	if ti.ExpiresAt == nil || !ti.ExpiresAt.Equal(exp) {
		t.Fatalf("expires = %v, want %v", ti.ExpiresAt, exp)
	}
	if ti.Expired(time.Now()) {
		t.Fatal("token should not be expired yet")
	}

	if err := DeleteToken(); err != nil {
		t.Fatalf("DeleteToken: %v", err)
	}
	if err := DeleteToken(); err != nil {
		t.Fatalf("second DeleteToken: %v", err)
	}
}

func TestEnvTokenWins(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvToken, "bearer opaque-token")

	ti, err := GetToken()
	if err != nil {
		t.Fatal(err)
	}
	if ti.Token != "opaque-token" || ti.Source != "env" || ti.ExpiresAt != nil {
		t.Fatalf("got %+v", ti)
	}
}

func TestSetTokenRejectsEmpty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := SetToken("   "); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseClaims(t *testing.T) {
	c, err := ParseClaims(signed(t, jwt.MapClaims{"sub": "user-7", "iss": "planner-backend"}))
	if err != nil {
		t.Fatal(err)
	}
	if c.Subject != "user-7" || c.Issuer != "planner-backend" || c.ExpiresAt != nil {
		t.Fatalf("claims = %+v", c)
	}
	if _, err := ParseClaims("not-a-jwt"); err == nil {
		t.Fatal("expected error for opaque token")
	}
}
