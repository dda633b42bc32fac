// password.go implements password strength checks for admin bootstrap,
// including a k-anonymity lookup against the Have I Been Pwned range API.
package services

import (
	"bufio"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// MinPasswordLength is the minimum accepted admin password length.
const MinPasswordLength = 12

// hibpRangeURL is the k-anonymity range endpoint; only the first five hex
// characters of the SHA-1 ever leave the process.
const hibpRangeURL = "https://api.pwnedpasswords.com/range/"

// PasswordIssue describes one failed strength requirement.
type PasswordIssue string

const (
	IssueTooShort     PasswordIssue = "must be at least 12 characters"
	IssueNoUppercase  PasswordIssue = "must contain an uppercase letter"
	IssueNoLowercase  PasswordIssue = "must contain a lowercase letter"
	IssueNoDigit      PasswordIssue = "must contain a digit"
	IssueNoSymbol     PasswordIssue = "must contain a symbol"
	IssueCommonword   PasswordIssue = "must not contain a common word"
	IssueRepeatedRuns PasswordIssue = "must not repeat the same character four times in a row"
)

// blockedWords are substrings that trivially weaken a password regardless
// of its other characteristics.
var blockedWords = []string{"password", "senha", "admin", "designladder", "qwerty", "123456"}

// CheckPasswordStrength returns every strength requirement the candidate
// fails, or an empty slice if it passes all of them.
func CheckPasswordStrength(password string) []PasswordIssue {
	var issues []PasswordIssue

	if len(password) < MinPasswordLength {
		issues = append(issues, IssueTooShort)
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if !hasUpper {
		issues = append(issues, IssueNoUppercase)
	}
	if !hasLower {
		issues = append(issues, IssueNoLowercase)
	}
	if !hasDigit {
		issues = append(issues, IssueNoDigit)
	}
	if !hasSymbol {
		issues = append(issues, IssueNoSymbol)
	}

	lowered := strings.ToLower(password)
	for _, word := range blockedWords {
		if strings.Contains(lowered, word) {
			issues = append(issues, IssueCommonword)
			break
		}
	}

	if hasRepeatedRun(password, 4) {
		issues = append(issues, IssueRepeatedRuns)
	}

	return issues
}

// hasRepeatedRun reports whether any character repeats n times in a row.
func hasRepeatedRun(s string, n int) bool {
	run := 0
	var prev rune
	for i, r := range s {
		if i > 0 && r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			run = 1
		}
		prev = r
	}
	return false
}

// BreachChecker looks up whether a password appears in known breach corpora.
type BreachChecker interface {
	// PwnedCount returns how many times the password appears in known
	// breaches. Zero means not found.
	PwnedCount(ctx context.Context, password string) (int, error)
}

// HIBPBreachChecker implements BreachChecker against the public
// pwnedpasswords range API.
type HIBPBreachChecker struct {
	client  *http.Client
	baseURL string
}

// NewHIBPBreachChecker creates a breach checker with sane timeouts.
func NewHIBPBreachChecker() *HIBPBreachChecker {
	return &HIBPBreachChecker{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: hibpRangeURL,
	}
}

// PwnedCount queries the range API with the SHA-1 prefix and scans the
// suffix list locally.
// #SECURITY_CONCERN: k-anonymity - the full hash never leaves the process.
func (h *HIBPBreachChecker) PwnedCount(ctx context.Context, password string) (int, error) {
	sum := sha1.Sum([]byte(password))
	hash := strings.ToUpper(fmt.Sprintf("%x", sum))
	prefix, suffix := hash[:5], hash[5:]

	req, err := http.NewRequestWithContext(ctx, "GET", h.baseURL+prefix, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create breach check request: %w", err)
	}
	req.Header.Set("Add-Padding", "true")

	resp, err := h.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("breach check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("breach check returned status %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		candidate, countStr, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if strings.EqualFold(candidate, suffix) {
			count, err := strconv.Atoi(strings.TrimSpace(countStr))
			if err != nil {
				return 0, fmt.Errorf("malformed breach count %q: %w", countStr, err)
			}
			return count, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read breach check response: %w", err)
	}

	return 0, nil
}

// Ensure HIBPBreachChecker implements BreachChecker
var _ BreachChecker = (*HIBPBreachChecker)(nil)
