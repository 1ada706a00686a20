package usecase

import (
	"reflect"
	"testing"
)

func TestTokenKeysMatchStoredFormat(t *testing.T) {
	if got := accessTokenKey(7, "abc-123"); got != "access_token:7:abc-123" {
		t.Errorf("access key = %q", got)
	}
	if got := refreshTokenKey(7, "def-456"); got != "refresh_token:7:def-456" {
		t.Errorf("refresh key = %q", got)
	}
}

func TestLogoutKeysCoverBothTokens(t *testing.T) {
	got := logoutKeys(7, "abc", "def")
	want := []string{"access_token:7:abc", "refresh_token:7:def"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
}

func TestLogoutKeysWithoutRefreshToken(t *testing.T) {
	got := logoutKeys(7, "abc", "")
	want := []string{"access_token:7:abc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
}
