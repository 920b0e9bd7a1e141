package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plannr/todo-api/internal/core/domain"
)

const accessLogsCollection = "access_logs"

// AccessLogRepository persists audit entries to the access_logs collection.
type AccessLogRepository struct {
	coll *mongo.Collection
}

func NewAccessLogRepository(db *mongo.Database) *AccessLogRepository {
	return &AccessLogRepository{coll: db.Collection(accessLogsCollection)}
}

func (r *AccessLogRepository) Insert(ctx context.Context, entry *domain.AccessLog) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"method":       entry.Method,
		"url":          entry.URL,
		"requested_at": entry.RequestedAt.UTC(),
	}
	if entry.UserID != 0 {
		doc["user_id"] = entry.UserID
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
