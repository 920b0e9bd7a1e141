package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// Sequence hands out monotonically increasing numeric ids per collection.
// Counter documents look like {_id: "<collection>", seq: <last id>}.
type Sequence struct {
	coll *mongo.Collection
}

func NewSequence(db *mongo.Database) *Sequence {
	return &Sequence{coll: db.Collection(countersCollection)}
}

// Next atomically increments and returns the counter for name.
func (s *Sequence) Next(ctx context.Context, name string) (int64, error) {
	var out struct {
		Seq int64 `bson:"seq"`
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&out)
	if err != nil {
		return 0, fmt.Errorf("next id for %s: %w", name, err)
	}
	return out.Seq, nil
}
