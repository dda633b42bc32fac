package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the respondent's self-reported role in the closed survey list.
type Role string

const (
	RoleHeadLead        Role = "head_lead"
	RoleProductDesigner Role = "product_designer"
	RoleResearcher      Role = "researcher"
	RoleUXWriter        Role = "ux_writer"
	RoleProductManager  Role = "product_manager"
	RoleEngineering     Role = "engineering"
	RoleOther           Role = "other"
)

// IsValid checks if the role is a valid survey role
func (r Role) IsValid() bool {
	switch r {
	case RoleHeadLead, RoleProductDesigner, RoleResearcher, RoleUXWriter,
		RoleProductManager, RoleEngineering, RoleOther:
		return true
	}
	return false
}

// Feedback is the respondent's reaction to their result.
type Feedback string

const (
	FeedbackYes       Feedback = "yes"
	FeedbackPartially Feedback = "partially"
	FeedbackNo        Feedback = "no"
)

// IsValid checks if the feedback value is one of the accepted reactions
func (f Feedback) IsValid() bool {
	switch f {
	case FeedbackYes, FeedbackPartially, FeedbackNo:
		return true
	}
	return false
}

// Identifier columns a stored diagnosis can be resolved by.
const (
	ColumnResponseID = "response_id"
	ColumnID         = "_id"
)

// ResultKey names the exact column and value a lookup matched on, so a
// follow-up write targets the same row through the same identifier.
// #DATA_ASSUMPTION: Historical rows may predate response_id; those resolve
// through their ObjectID hex only.
type ResultKey struct {
	Column string
	Value  string
}

// MaturityDiagnosis is one completed maturity survey submission together
// with its computed result.
type MaturityDiagnosis struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ResponseID string             `bson:"response_id,omitempty" json:"response_id,omitempty"`

	FullName string `bson:"full_name" json:"full_name"`
	Email    string `bson:"email" json:"email"`
	Company  string `bson:"company,omitempty" json:"company,omitempty"`
	Role     Role   `bson:"role" json:"role"`

	Q1  int `bson:"q1" json:"q1"`
	Q2  int `bson:"q2" json:"q2"`
	Q3  int `bson:"q3" json:"q3"`
	Q4  int `bson:"q4" json:"q4"`
	Q5  int `bson:"q5" json:"q5"`
	Q6  int `bson:"q6" json:"q6"`
	Q7  int `bson:"q7" json:"q7"`
	Q8  int `bson:"q8" json:"q8"`
	Q9  int `bson:"q9" json:"q9"`
	Q10 int `bson:"q10" json:"q10"`
	Q11 int `bson:"q11" json:"q11"`

	TotalScore    int     `bson:"total_score" json:"total_score"`
	Percentage    float64 `bson:"percentage" json:"percentage"`
	MaturityLevel int     `bson:"maturity_level" json:"maturity_level"`
	Archetype     string  `bson:"archetype" json:"archetype"`

	Feedback Feedback `bson:"feedback,omitempty" json:"feedback,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// CollectionName returns the MongoDB collection name
func (MaturityDiagnosis) CollectionName() string {
	return "maturity_diagnosis"
}

// BeforeCreate sets default values before creating a diagnosis
func (d *MaturityDiagnosis) BeforeCreate() {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
}

// Answers returns the eleven question values in question order.
func (d *MaturityDiagnosis) Answers() [11]int {
	return [11]int{d.Q1, d.Q2, d.Q3, d.Q4, d.Q5, d.Q6, d.Q7, d.Q8, d.Q9, d.Q10, d.Q11}
}

// Token returns the public identifier for this diagnosis, preferring the
// short response token over the ObjectID hex.
func (d *MaturityDiagnosis) Token() string {
	if d.ResponseID != "" {
		return d.ResponseID
	}
	return d.ID.Hex()
}
