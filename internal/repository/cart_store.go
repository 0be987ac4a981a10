// Package repository provides the data access layer for the cart service.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/syntriq/cart-service/internal/domain/model"
)

// CartRecord is the persisted shape of one cart slot: the full line
// item collection plus the active discount, written as a whole on
// every mutation (write-through, no diffing).
type CartRecord struct {
	CartID    string                `bson:"_id" json:"cart_id"`
	Items     []model.LineItem      `bson:"items" json:"items"`
	Discount  *model.DiscountPolicy `bson:"discount,omitempty" json:"discount,omitempty"`
	UpdatedAt time.Time             `bson:"updated_at" json:"updated_at"`
}

// EmptyCartRecord returns an empty record for the given cart key.
func EmptyCartRecord(cartID string) *CartRecord {
	return &CartRecord{CartID: cartID, Items: []model.LineItem{}}
}

// CartStore persists cart slots in a key-value fashion. Implementations
// must make Load total for missing slots: a cart that was never saved
// loads as an empty record, not an error. Load errors are reserved for
// infrastructure failures; callers degrade those to an empty cart too.
type CartStore interface {
	// Load reads the slot for the given cart key.
	Load(ctx context.Context, cartID string) (*CartRecord, error)
	// Save overwrites the slot with the full record. Last writer wins.
	Save(ctx context.Context, record *CartRecord) error
	// Delete removes the slot entirely.
	Delete(ctx context.Context, cartID string) error
}

// MongoCartStore implements CartStore on a MongoDB collection, one
// document per cart key.
type MongoCartStore struct {
	collection *mongo.Collection
}

// NewMongoCartStore creates a cart store backed by the carts collection.
func NewMongoCartStore(db *MongoDB) *MongoCartStore {
	return &MongoCartStore{collection: db.Carts}
}

// Load reads a cart document. A missing document yields an empty
// record. Infrastructure errors are returned as-is; the engine
// degrades them to an empty cart.
func (s *MongoCartStore) Load(ctx context.Context, cartID string) (*CartRecord, error) {
	var record CartRecord
	err := s.collection.FindOne(ctx, bson.M{"_id": cartID}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return EmptyCartRecord(cartID), nil
	}
	if err != nil {
		return nil, err
	}
	if record.Items == nil {
		record.Items = []model.LineItem{}
	}
	return &record, nil
}

// Save upserts the full cart document.
func (s *MongoCartStore) Save(ctx context.Context, record *CartRecord) error {
	record.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": record.CartID}, record, opts)
	return err
}

// Delete removes the cart document. Deleting an absent cart is not an
// error.
func (s *MongoCartStore) Delete(ctx context.Context, cartID string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": cartID})
	return err
}
