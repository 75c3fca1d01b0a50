package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultCollection is where prank articles live unless configured
// otherwise.
const DefaultCollection = "april-fools"

// Mongo is the production Store over a single document collection.
type Mongo struct {
	col *mongo.Collection
}

// Connect dials Mongo with a bounded handshake; the returned client is
// built once at startup and injected everywhere it is needed.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return mongo.Connect(ctx, options.Client().ApplyURI(uri).SetMaxPoolSize(120))
}

func NewMongo(client *mongo.Client, database, collection string) *Mongo {
	if collection == "" {
		collection = DefaultCollection
	}
	return &Mongo{col: client.Database(database).Collection(collection)}
}

func (m *Mongo) FindBySlug(ctx context.Context, slug string) (*Article, error) {
	var a Article
	err := m.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (m *Mongo) Create(ctx context.Context, a *Article) (string, error) {
	res, err := m.col.InsertOne(ctx, a)
	if err != nil {
		return "", err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		return id.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// IncrementViews fetches the record by slug and writes back views+1. Not
// atomic under concurrent views of the same slug; a lost increment on a
// throwaway prank page is acceptable.
func (m *Mongo) IncrementViews(ctx context.Context, slug string) error {
	var doc struct {
		ID    primitive.ObjectID `bson:"_id"`
		Views int64              `bson:"views"`
	}
	err := m.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = m.col.UpdateOne(ctx,
		bson.M{"_id": doc.ID},
		bson.M{"$set": bson.M{"views": doc.Views + 1}},
	)
	return err
}

func (m *Mongo) TopByViews(ctx context.Context, limit int) ([]*Article, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "views", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var out []*Article
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
