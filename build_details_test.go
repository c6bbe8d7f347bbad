package paramval

import (
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	if Version() == "" {
		t.Error("Version() returned an empty string")
	}
	if Version() != "dev" {
		t.Errorf("expected development build version 'dev', got %q", Version())
	}
}

func TestUserAgent(t *testing.T) {
	ua := UserAgent()
	if !strings.HasPrefix(ua, "paramval/") {
		t.Errorf("UserAgent() = %q, expected prefix 'paramval/'", ua)
	}
	if !strings.HasSuffix(ua, Version()) {
		t.Errorf("UserAgent() = %q, expected suffix %q", ua, Version())
	}
}
