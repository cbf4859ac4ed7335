package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/CybrFarhvn06/Codex/internal/models"
)

// MongoStore handles report document CRUD in MongoDB. Documents are looked
// up by the research UUID shared with the research_logs table, never by
// Mongo's own object ID.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection("reports")}
}

func (s *MongoStore) Insert(ctx context.Context, doc *models.ReportDocument) error {
	doc.CreatedAt = time.Now().UTC()
	if _, err := s.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("mongo insert: %w", err)
	}
	return nil
}

func (s *MongoStore) GetByResearchID(ctx context.Context, researchID string) (*models.ReportDocument, error) {
	var doc models.ReportDocument
	if err := s.col.FindOne(ctx, bson.M{"research_id": researchID}).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *MongoStore) DeleteByResearchID(ctx context.Context, researchID string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"research_id": researchID})
	return err
}
