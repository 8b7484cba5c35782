package sessions

import "testing"

func TestIssueValidateRevoke(t *testing.T) {
	store := NewStore()

	token := store.Issue()
	if token == "" {
		t.Fatal("Issue returned an empty token")
	}
	if !store.Validate(token) {
		t.Error("freshly issued token should validate")
	}
	if store.Validate("never-issued") {
		t.Error("unknown token should not validate")
	}

	store.Revoke(token)
	if store.Validate(token) {
		t.Error("revoked token should not validate")
	}

	// Revoking again is a no-op.
	store.Revoke(token)
}

func TestTokensAreUnique(t *testing.T) {
	store := NewStore()
	a, b := store.Issue(), store.Issue()
	if a == b {
		t.Errorf("two issued tokens collide: %s", a)
	}
	if !store.Validate(a) || !store.Validate(b) {
		t.Error("both issued tokens should stay valid")
	}
}
