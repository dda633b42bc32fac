package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAdminUser_PasswordHashNeverSerialized(t *testing.T) {
	user := &AdminUser{
		Email:        "admin@example.com",
		Name:         "Admin",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
	user.BeforeCreate()

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "abcdefghijklmnopqrstuv") {
		t.Error("password hash leaked into JSON output")
	}
	if strings.Contains(string(data), "password_hash") {
		t.Error("password_hash key present in JSON output")
	}
}

func TestAdminUser_BeforeCreate(t *testing.T) {
	user := &AdminUser{Email: "admin@example.com"}
	user.BeforeCreate()

	if user.ID.IsZero() {
		t.Error("BeforeCreate() did not assign an ID")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("BeforeCreate() did not set timestamps")
	}
	if !user.IsActive {
		t.Error("BeforeCreate() did not activate the account")
	}
}

func TestAdminUser_CanLogin(t *testing.T) {
	user := &AdminUser{IsActive: true}
	if !user.CanLogin() {
		t.Error("active user should be able to log in")
	}

	user.IsActive = false
	if user.CanLogin() {
		t.Error("deactivated user must not log in")
	}
}

func TestAdminUser_UpdateLastLogin(t *testing.T) {
	user := &AdminUser{}
	user.BeforeCreate()

	if user.LastLoginAt != nil {
		t.Fatal("new user should have no login timestamp")
	}

	user.UpdateLastLogin()
	if user.LastLoginAt == nil {
		t.Error("UpdateLastLogin() did not set the timestamp")
	}
	if user.UpdatedAt.Before(*user.LastLoginAt) {
		t.Error("UpdatedAt not advanced with the login timestamp")
	}
}
