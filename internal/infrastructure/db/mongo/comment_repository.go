package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plannr/todo-api/internal/core/domain"
)

const commentsCollection = "comments"

// CommentRepository implements ports.CommentRepository using MongoDB.
type CommentRepository struct {
	coll *mongo.Collection
	seq  *Sequence
}

func NewCommentRepository(db *mongo.Database, seq *Sequence) *CommentRepository {
	return &CommentRepository{coll: db.Collection(commentsCollection), seq: seq}
}

type commentDoc struct {
	ID         int64     `bson:"_id"`
	Contents   string    `bson:"contents"`
	UserID     int64     `bson:"user_id"`
	TodoID     int64     `bson:"todo_id"`
	CreatedAt  time.Time `bson:"created_at"`
	ModifiedAt time.Time `bson:"modified_at"`
	User       *userDoc  `bson:"user,omitempty"`
}

func (d *commentDoc) toDomain() *domain.Comment {
	c := &domain.Comment{
		ID:         d.ID,
		Contents:   d.Contents,
		UserID:     d.UserID,
		TodoID:     d.TodoID,
		CreatedAt:  d.CreatedAt.UTC(),
		ModifiedAt: d.ModifiedAt.UTC(),
	}
	if d.User != nil {
		c.User = d.User.toDomain()
	}
	return c
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.Next(ctx, commentsCollection)
	if err != nil {
		return nil, err
	}

	doc := commentDoc{
		ID:         id,
		Contents:   c.Contents,
		UserID:     c.UserID,
		TodoID:     c.TodoID,
		CreatedAt:  c.CreatedAt,
		ModifiedAt: c.ModifiedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CommentRepository) FindByTodoIDWithUser(ctx context.Context, todoID int64) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := append(mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"todo_id": todoID}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}, withUser("user")...)

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate comments: %w", err)
	}
	defer cur.Close(ctx)

	var docs []commentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}

	out := make([]*domain.Comment, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

// DeleteByID removes the comment; a missing id deletes nothing and succeeds.
func (r *CommentRepository) DeleteByID(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
