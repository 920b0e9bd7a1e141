package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plannr/todo-api/internal/core/domain"
)

const managersCollection = "managers"

type ManagerRepository struct {
	coll *mongo.Collection
	seq  *Sequence
}

func NewManagerRepository(db *mongo.Database, seq *Sequence) *ManagerRepository {
	return &ManagerRepository{coll: db.Collection(managersCollection), seq: seq}
}

type managerDoc struct {
	ID     int64    `bson:"_id"`
	UserID int64    `bson:"user_id"`
	TodoID int64    `bson:"todo_id"`
	User   *userDoc `bson:"user,omitempty"`
}

func (d *managerDoc) toDomain() *domain.Manager {
	m := &domain.Manager{ID: d.ID, UserID: d.UserID, TodoID: d.TodoID}
	if d.User != nil {
		m.User = d.User.toDomain()
	}
	return m
}

func (r *ManagerRepository) Create(ctx context.Context, m *domain.Manager) (*domain.Manager, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.Next(ctx, managersCollection)
	if err != nil {
		return nil, err
	}

	doc := managerDoc{ID: id, UserID: m.UserID, TodoID: m.TodoID}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert manager: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ManagerRepository) FindByID(ctx context.Context, id int64) (*domain.Manager, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc managerDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrManagerNotFound
		}
		return nil, fmt.Errorf("find manager: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ManagerRepository) FindByTodoIDWithUser(ctx context.Context, todoID int64) ([]*domain.Manager, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := append(mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"todo_id": todoID}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}, withUser("user")...)

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate managers: %w", err)
	}
	defer cur.Close(ctx)

	var docs []managerDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode managers: %w", err)
	}

	out := make([]*domain.Manager, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *ManagerRepository) ExistsByTodoIDAndUserID(ctx context.Context, todoID, userID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"todo_id": todoID, "user_id": userID})
	if err != nil {
		return false, fmt.Errorf("count managers: %w", err)
	}
	return n > 0, nil
}

func (r *ManagerRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete manager: %w", err)
	}
	return nil
}
