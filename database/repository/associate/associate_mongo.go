package associateRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"serenia/database"
	"serenia/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAssociateRepo implements AssociateRepository using MongoDB.
type MongoAssociateRepo struct {
	coll *mongo.Collection
}

// NewMongoAssociateRepo creates a new instance of AssociateRepository using MongoDB.
func NewMongoAssociateRepo() AssociateRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection(database.AssociatesCollection)
	repo := &MongoAssociateRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		// Index creation is best-effort at startup; queries still work without.
		fmt.Printf("associate repo: failed to ensure indexes: %v\n", err)
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoAssociateRepo) GetByID(id string) (*models.Associate, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var associate models.Associate
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&associate); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch associate with id %s: %w", id, err)
	}
	return &associate, nil
}

// GetAll returns every associate with the calendar projected away; listing
// endpoints never need the full aggregate.
func (r *MongoAssociateRepo) GetAll() ([]models.Associate, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"availability": 0})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve associates: %w", err)
	}
	defer cursor.Close(ctx)

	var associates []models.Associate
	if err := cursor.All(ctx, &associates); err != nil {
		return nil, fmt.Errorf("failed to decode associates: %w", err)
	}
	return associates, nil
}

// GetByDesignation filters the directory by designation, calendars projected
// away.
func (r *MongoAssociateRepo) GetByDesignation(designation string) ([]models.Associate, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"availability": 0})
	cursor, err := r.coll.Find(ctx, bson.M{"designation": designation}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve %s associates: %w", designation, err)
	}
	defer cursor.Close(ctx)

	var associates []models.Associate
	if err := cursor.All(ctx, &associates); err != nil {
		return nil, fmt.Errorf("failed to decode associates: %w", err)
	}
	return associates, nil
}
