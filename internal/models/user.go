package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminUser is a dashboard operator account.
// #DATA_ASSUMPTION: Email is unique across the entire system
type AdminUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	PasswordHash string             `bson:"password_hash" json:"-"`

	// Status
	IsActive    bool       `bson:"is_active" json:"is_active"`
	LastLoginAt *time.Time `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// CollectionName returns the MongoDB collection name for admin users
func (AdminUser) CollectionName() string {
	return "admin_users"
}

// BeforeCreate sets default values before inserting a new admin user
func (u *AdminUser) BeforeCreate() {
	now := time.Now().UTC()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	u.IsActive = true
}

// BeforeUpdate sets the UpdatedAt timestamp
func (u *AdminUser) BeforeUpdate() {
	u.UpdatedAt = time.Now().UTC()
}

// UpdateLastLogin updates the last login timestamp
func (u *AdminUser) UpdateLastLogin() {
	now := time.Now().UTC()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

// CanLogin returns true if the account may authenticate
func (u *AdminUser) CanLogin() bool {
	return u.IsActive
}
