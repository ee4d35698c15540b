// Package mongo implements the event store against MongoDB.
package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/olade/naija-events/internal/event"
	"github.com/olade/naija-events/internal/store"
)

const collectionName = "events"

// Store persists events in a MongoDB collection.
type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// document is the stored shape: the normalized event plus store-managed
// metadata.
type document struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty"`
	event.NormalizedEvent `bson:",inline"`
	CreatedAt             time.Time `bson:"createdAt"`
	UpdatedAt             time.Time `bson:"updatedAt"`
}

// Connect dials MongoDB and returns a Store over the events collection.
func Connect(ctx context.Context, uri, db string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	return &Store{
		client:     client,
		collection: client.Database(db).Collection(collectionName),
	}, nil
}

// Close releases the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Create persists one event and returns its stored id.
func (s *Store) Create(ctx context.Context, ev *event.NormalizedEvent) (string, error) {
	now := time.Now().UTC()
	res, err := s.collection.InsertOne(ctx, document{
		NormalizedEvent: *ev,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return "", fmt.Errorf("inserting event: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

// BulkCreate persists a batch with a single insertMany.
func (s *Store) BulkCreate(ctx context.Context, evs []*event.NormalizedEvent) error {
	if len(evs) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(evs))
	now := time.Now().UTC()
	for _, ev := range evs {
		docs = append(docs, document{
			NormalizedEvent: *ev,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}

	if _, err := s.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("inserting events: %w", err)
	}
	return nil
}

// ExistsLike backs the deduplicator: unanchored case-insensitive regex on
// name and location, date matched across the stored day.
func (s *Store) ExistsLike(ctx context.Context, name string, date time.Time, location string) (bool, error) {
	day := event.DateOnly(date)
	filter := bson.M{
		"eventName": primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"},
		"location":  primitive.Regex{Pattern: regexp.QuoteMeta(location), Options: "i"},
		"date": bson.M{
			"$gte": day,
			"$lt":  day.AddDate(0, 0, 1),
		},
	}

	count, err := s.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("querying existing events: %w", err)
	}
	return count > 0, nil
}

// FindAll lists active events matching the query with pagination.
func (s *Store) FindAll(ctx context.Context, q store.Query) (*store.PageResult, error) {
	filter := bson.M{"isActive": true}
	if q.Category != "" {
		filter["category"] = primitive.Regex{Pattern: regexp.QuoteMeta(q.Category), Options: "i"}
	}
	if q.City != "" {
		filter["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(q.City), Options: "i"}
	}
	if q.Search != "" {
		search := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"eventName": search},
			bson.M{"description": search},
			bson.M{"location": search},
		}
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("counting events: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("finding events: %w", err)
	}
	events, err := decodeAll(ctx, cursor)
	if err != nil {
		return nil, err
	}

	return &store.PageResult{
		Events:     events,
		Total:      total,
		Page:       page,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// FindUpcoming lists active events dated now or later, soonest first.
func (s *Store) FindUpcoming(ctx context.Context, limit int) ([]*event.NormalizedEvent, error) {
	filter := bson.M{
		"isActive": true,
		"date":     bson.M{"$gte": time.Now().UTC()},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("finding upcoming events: %w", err)
	}
	return decodeAll(ctx, cursor)
}

// Update replaces the event stored under id.
func (s *Store) Update(ctx context.Context, id string, ev *event.NormalizedEvent) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("parsing event id: %w", err)
	}

	update := bson.M{"$set": bson.M{
		"eventName":   ev.Name,
		"description": ev.Description,
		"date":        ev.OccursAt,
		"location":    ev.Location,
		"venue":       ev.Venue,
		"price":       ev.PriceAmount,
		"isFree":      ev.PriceIsFree,
		"category":    ev.Category,
		"ticketLink":  ev.TicketURL,
		"imageUrl":    ev.ImageURL,
		"sourceUrl":   ev.SourceURL,
		"source":      ev.SourceID,
		"isActive":    ev.Active,
		"updatedAt":   time.Now().UTC(),
	}}

	res, err := s.collection.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("event not found: %s", id)
	}
	return nil
}

// Delete removes the event stored under id.
func (s *Store) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("parsing event id: %w", err)
	}

	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("event not found: %s", id)
	}
	return nil
}

// Stats aggregates totals by source and category.
func (s *Store) Stats(ctx context.Context) (*store.Stats, error) {
	stats := &store.Stats{
		BySource:   make(map[string]int64),
		ByCategory: make(map[string]int64),
	}

	var err error
	if stats.TotalEvents, err = s.collection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("counting events: %w", err)
	}
	if stats.ActiveEvents, err = s.collection.CountDocuments(ctx, bson.M{"isActive": true}); err != nil {
		return nil, fmt.Errorf("counting active events: %w", err)
	}
	upcomingFilter := bson.M{"isActive": true, "date": bson.M{"$gte": time.Now().UTC()}}
	if stats.UpcomingEvents, err = s.collection.CountDocuments(ctx, upcomingFilter); err != nil {
		return nil, fmt.Errorf("counting upcoming events: %w", err)
	}

	if stats.BySource, err = s.groupCount(ctx, "$source"); err != nil {
		return nil, err
	}
	if stats.ByCategory, err = s.groupCount(ctx, "$category"); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) groupCount(ctx context.Context, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": field, "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregating %s: %w", field, err)
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("decoding aggregation row: %w", err)
		}
		counts[row.ID] = row.Count
	}
	return counts, cursor.Err()
}

func decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]*event.NormalizedEvent, error) {
	defer cursor.Close(ctx)

	var events []*event.NormalizedEvent
	for cursor.Next(ctx) {
		var doc document
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding event: %w", err)
		}
		ev := doc.NormalizedEvent
		events = append(events, &ev)
	}
	return events, cursor.Err()
}
