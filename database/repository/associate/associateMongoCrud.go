package associateRepo

import (
	"fmt"
	"time"

	"serenia/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new associate document at version zero.
func (r *MongoAssociateRepo) Create(associate *models.Associate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	associate.Version = 0
	associate.CreatedAt = now
	associate.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, associate)
	if err != nil {
		return fmt.Errorf("failed to create associate: %w", err)
	}
	return nil
}

// ReplaceVersioned saves the whole aggregate behind an optimistic version
// check: the filter matches the version the caller loaded, and the write bumps
// it. A concurrent writer makes the filter miss, which surfaces as
// ErrVersionConflict so the caller can reload and retry.
func (r *MongoAssociateRepo) ReplaceVersioned(associate *models.Associate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	loadedVersion := associate.Version
	associate.Version = loadedVersion + 1
	associate.UpdatedAt = time.Now()

	filter := bson.M{"id": associate.ID, "version": loadedVersion}
	result, err := r.coll.ReplaceOne(ctx, filter, associate)
	if err != nil {
		associate.Version = loadedVersion
		return fmt.Errorf("failed to replace associate with id %s: %w", associate.ID, err)
	}
	if result.MatchedCount == 0 {
		associate.Version = loadedVersion
		// Distinguish a missing document from a lost race.
		count, countErr := r.coll.CountDocuments(ctx, bson.M{"id": associate.ID})
		if countErr == nil && count == 0 {
			return ErrNotFound
		}
		return ErrVersionConflict
	}
	return nil
}

// Delete removes an associate document by its ID.
func (r *MongoAssociateRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete associate with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
