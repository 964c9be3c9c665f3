// Package store provides the document lookup the scoring engine reads its
// market statistics from.
package store

import "context"

// Collections the scoring engine knows about.
const (
	CollectionLocalStats            = "local_stats"
	CollectionJobGroups             = "job_groups"
	CollectionUnemploymentDurations = "unemployment_durations"
	CollectionRecentOffers          = "recent_offers"
	CollectionJobBoards             = "job_boards"
)

// Document is a raw stored record. Its key is carried under "_id", a
// metadata key the hydrator strips before merging.
type Document map[string]any

// ID returns the document key, if present.
func (d Document) ID() string {
	id, _ := d["_id"].(string)
	return id
}

// Store is the narrow lookup surface consumed by the scoring engine. Absence
// is not an error: FindOne returns a nil document for a missing key and
// FindMany simply omits missing keys from its result.
type Store interface {
	FindOne(ctx context.Context, collection, id string) (Document, error)
	FindMany(ctx context.Context, collection string, ids []string) ([]Document, error)
	FindAll(ctx context.Context, collection string) ([]Document, error)
}
