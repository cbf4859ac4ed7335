package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResearchRequest is the JSON body for POST /api/research.
type ResearchRequest struct {
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`
	Institution  string `json:"institution"`
	Topic        string `json:"topic"`
	Query        string `json:"query"`
}

// ResearchLog represents a row in the PostgreSQL research_logs table. It is
// the per-student history entry; the report body lives in MongoDB.
type ResearchLog struct {
	ID        string    `json:"research_id"`
	StudentID string    `json:"student_id"`
	Topic     string    `json:"topic"`
	Query     string    `json:"query"`
	Generator string    `json:"generator"`
	CreatedAt time.Time `json:"created_at"`
}

// ReportDocument is a single generated report stored in MongoDB. ResearchID
// ties it to the research_logs row with the same UUID.
type ReportDocument struct {
	ID         primitive.ObjectID `json:"-"           bson:"_id,omitempty"`
	ResearchID string             `json:"research_id" bson:"research_id"`
	StudentID  string             `json:"student_id"  bson:"student_id"`
	Topic      string             `json:"topic"       bson:"topic"`
	Query      string             `json:"query"       bson:"query"`
	Generator  string             `json:"generator"   bson:"generator"`
	Report     Report             `json:"report"      bson:"report"`
	CreatedAt  time.Time          `json:"created_at"  bson:"created_at"`
}
