package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"social-pulse/models"
)

type AnalysisRepository struct {
	col *mongo.Collection
}

func NewAnalysisRepository(db *mongo.Database) *AnalysisRepository {
	return &AnalysisRepository{col: db.Collection("analyses")}
}

func (r *AnalysisRepository) Insert(ctx context.Context, run models.AnalysisRun) (*mongo.InsertOneResult, error) {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	return r.col.InsertOne(ctx, run)
}

// ListRecent returns the most recent runs, newest first.
func (r *AnalysisRepository) ListRecent(ctx context.Context, limit int) ([]models.AnalysisRun, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var runs []models.AnalysisRun
	if err := cur.All(ctx, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}
