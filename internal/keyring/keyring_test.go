package keyring

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestAPIKeyLifecycle(t *testing.T) {
	keyring.MockInit()

	if _, err := GetAPIKey(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetAPIKey() on empty keyring error = %v, want ErrNotFound", err)
	}

	if err := SetAPIKey("secret-key"); err != nil {
		t.Fatalf("SetAPIKey() error = %v", err)
	}

	got, err := GetAPIKey()
	if err != nil {
		t.Fatalf("GetAPIKey() error = %v", err)
	}
	if got != "secret-key" {
		t.Errorf("GetAPIKey() = %q, want secret-key", got)
	}

	if err := DeleteAPIKey(); err != nil {
		t.Fatalf("DeleteAPIKey() error = %v", err)
	}
	if err := DeleteAPIKey(); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteAPIKey() error = %v, want ErrNotFound", err)
	}
}

func TestSetRejectsEmpty(t *testing.T) {
	keyring.MockInit()

	if err := SetAPIKey(""); err == nil {
		t.Error("SetAPIKey(\"\") should fail")
	}
	if err := SetConnectionString(""); err == nil {
		t.Error("SetConnectionString(\"\") should fail")
	}
}

func TestConnectionStringIsSeparateFromAPIKey(t *testing.T) {
	keyring.MockInit()

	if err := SetConnectionString("postgresql://pulse@localhost/pulse"); err != nil {
		t.Fatalf("SetConnectionString() error = %v", err)
	}
	if _, err := GetAPIKey(); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetAPIKey() error = %v, want ErrNotFound", err)
	}
	if !IsAvailable() {
		t.Error("IsAvailable() = false with mock keyring")
	}
}

func TestUnavailableKeyring(t *testing.T) {
	keyring.MockInitWithError(errors.New("dbus not running"))
	defer keyring.MockInit()

	if _, err := GetAPIKey(); !errors.Is(err, ErrKeyringUnavailable) {
		t.Errorf("GetAPIKey() error = %v, want ErrKeyringUnavailable", err)
	}
	if IsAvailable() {
		t.Error("IsAvailable() = true for failing keyring")
	}
}
