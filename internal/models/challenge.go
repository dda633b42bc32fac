package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChallengeResponse is one submission of the free-text research form.
// Every field is collected as entered; frequency, team size, company size,
// budget and urgency are free-form select values, not closed enums.
type ChallengeResponse struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Problem        string `bson:"problem" json:"problem"`
	DesiredOutcome string `bson:"desired_outcome" json:"desired_outcome"`
	Frequency      string `bson:"frequency" json:"frequency"`
	TeamSize       string `bson:"team_size" json:"team_size"`
	Role           string `bson:"role" json:"role"`
	CompanySize    string `bson:"company_size" json:"company_size"`
	Budget         string `bson:"budget" json:"budget"`
	Urgency        string `bson:"urgency" json:"urgency"`
	EarlyTester    bool   `bson:"early_tester" json:"early_tester"`
	CompanyName    string `bson:"company_name" json:"company_name"`
	Email          string `bson:"email" json:"email"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// CollectionName returns the MongoDB collection name
func (ChallengeResponse) CollectionName() string {
	return "challenge_responses"
}

// BeforeCreate sets default values before creating a challenge response
func (c *ChallengeResponse) BeforeCreate() {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
}
