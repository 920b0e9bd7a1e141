package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plannr/todo-api/internal/core/domain"
	"github.com/plannr/todo-api/internal/core/ports"
)

const todosCollection = "todos"

type TodoRepository struct {
	coll *mongo.Collection
	seq  *Sequence
}

func NewTodoRepository(db *mongo.Database, seq *Sequence) *TodoRepository {
	return &TodoRepository{coll: db.Collection(todosCollection), seq: seq}
}

type todoDoc struct {
	ID         int64     `bson:"_id"`
	Title      string    `bson:"title"`
	Contents   string    `bson:"contents"`
	Weather    string    `bson:"weather"`
	UserID     int64     `bson:"user_id"`
	CreatedAt  time.Time `bson:"created_at"`
	ModifiedAt time.Time `bson:"modified_at"`
	Owner      *userDoc  `bson:"owner,omitempty"`
}

func (d *todoDoc) toDomain() *domain.Todo {
	t := &domain.Todo{
		ID:         d.ID,
		Title:      d.Title,
		Contents:   d.Contents,
		Weather:    d.Weather,
		OwnerID:    d.UserID,
		CreatedAt:  d.CreatedAt.UTC(),
		ModifiedAt: d.ModifiedAt.UTC(),
	}
	if d.Owner != nil {
		t.Owner = d.Owner.toDomain()
	}
	return t
}

// Create inserts a new todo with the next numeric id.
func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.Next(ctx, todosCollection)
	if err != nil {
		return nil, err
	}

	doc := todoDoc{
		ID:         id,
		Title:      todo.Title,
		Contents:   todo.Contents,
		Weather:    todo.Weather,
		UserID:     todo.OwnerID,
		CreatedAt:  todo.CreatedAt,
		ModifiedAt: todo.ModifiedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TodoRepository) FindByID(ctx context.Context, id int64) (*domain.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc todoDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TodoRepository) FindByIDWithOwner(ctx context.Context, id int64) (*domain.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := append(mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
	}, withUser("owner")...)

	docs, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, domain.ErrTodoNotFound
	}
	return docs[0], nil
}

// List returns one page of todos ordered by modified_at descending, with owners
// joined, plus the total number of todos.
func (r *TodoRepository) List(ctx context.Context, q ports.TodoPageQuery) ([]*domain.Todo, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count todos: %w", err)
	}

	pipeline := append(mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "modified_at", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: "$skip", Value: int64((q.Page - 1) * q.Size)}},
		{{Key: "$limit", Value: int64(q.Size)}},
	}, withUser("owner")...)

	todos, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	return todos, total, nil
}

func (r *TodoRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*domain.Todo, error) {
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate todos: %w", err)
	}
	defer cur.Close(ctx)

	var docs []todoDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}

	out := make([]*domain.Todo, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}
