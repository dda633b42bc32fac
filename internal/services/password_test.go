package services

import (
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCheckPasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		issues   []PasswordIssue
	}{
		{"Strong password", "Tr!cky-Ladder-42x", nil},
		{"Too short", "Ab1!xyz", []PasswordIssue{IssueTooShort}},
		{"No uppercase", "lowercase-only-123!", []PasswordIssue{IssueNoUppercase}},
		{"No lowercase", "UPPERCASE-ONLY-123!", []PasswordIssue{IssueNoLowercase}},
		{"No digit", "No-Digits-Here-Ever!", []PasswordIssue{IssueNoDigit}},
		{"No symbol", "NoSymbolsHere123abc", []PasswordIssue{IssueNoSymbol}},
		{"Common word", "MyPassword-Is-Long-1!", []PasswordIssue{IssueCommonword}},
		{"Repeated run", "Gooood-Morning-11!aaaa", []PasswordIssue{IssueRepeatedRuns}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckPasswordStrength(tt.password)
			if len(tt.issues) == 0 {
				if len(got) != 0 {
					t.Errorf("CheckPasswordStrength() = %v, want no issues", got)
				}
				return
			}
			for _, want := range tt.issues {
				found := false
				for _, issue := range got {
					if issue == want {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("CheckPasswordStrength() = %v, missing %q", got, want)
				}
			}
		})
	}
}

func TestCheckPasswordStrength_MultipleIssues(t *testing.T) {
	got := CheckPasswordStrength("admin")
	if len(got) < 3 {
		t.Errorf("CheckPasswordStrength(admin) = %v, want several issues", got)
	}
}

func TestHasRepeatedRun(t *testing.T) {
	tests := []struct {
		s        string
		n        int
		expected bool
	}{
		{"aaab", 4, false},
		{"aaaab", 4, true},
		{"abababab", 4, false},
		{"", 4, false},
		{"zzzz", 4, true},
	}

	for _, tt := range tests {
		if got := hasRepeatedRun(tt.s, tt.n); got != tt.expected {
			t.Errorf("hasRepeatedRun(%q, %d) = %v, want %v", tt.s, tt.n, got, tt.expected)
		}
	}
}

func TestHIBPBreachChecker_PwnedCount(t *testing.T) {
	const password = "hunter2"
	sum := sha1.Sum([]byte(password))
	hash := strings.ToUpper(fmt.Sprintf("%x", sum))
	prefix, suffix := hash[:5], hash[5:]

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, prefix) {
			t.Errorf("unexpected range path %q", r.URL.Path)
		}
		// Range responses list suffixes with counts, one per line.
		fmt.Fprintf(w, "0000000000000000000000000000000000A:3\r\n")
		fmt.Fprintf(w, "%s:17057\r\n", suffix)
		fmt.Fprintf(w, "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF:1\r\n")
	}))
	defer server.Close()

	checker := &HIBPBreachChecker{
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: server.URL + "/range/",
	}

	count, err := checker.PwnedCount(context.Background(), password)
	if err != nil {
		t.Fatalf("PwnedCount() error = %v", err)
	}
	if count != 17057 {
		t.Errorf("PwnedCount() = %d, want 17057", count)
	}
}

func TestHIBPBreachChecker_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "0000000000000000000000000000000000A:3\r\n")
	}))
	defer server.Close()

	checker := &HIBPBreachChecker{
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: server.URL + "/range/",
	}

	count, err := checker.PwnedCount(context.Background(), "unique-passphrase-not-in-corpus")
	if err != nil {
		t.Fatalf("PwnedCount() error = %v", err)
	}
	if count != 0 {
		t.Errorf("PwnedCount() = %d, want 0", count)
	}
}

func TestHIBPBreachChecker_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	checker := &HIBPBreachChecker{
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: server.URL + "/range/",
	}

	if _, err := checker.PwnedCount(context.Background(), "whatever"); err == nil {
		t.Error("PwnedCount() expected error on 503")
	}
}
