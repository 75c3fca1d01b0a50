package store

import "context"

// Article is the sole persisted entity: one prank news page, keyed by its
// slug. Records are created once and never mutated afterwards except for
// the view counter.
type Article struct {
	Headline    string  `bson:"headline" json:"headline"`
	Description *string `bson:"description" json:"description"`
	Content     string  `bson:"content" json:"content"`
	SubHeading  string  `bson:"subHeading" json:"subHeading"`
	Category    string  `bson:"category" json:"category"`
	Type        string  `bson:"type" json:"type"`
	Slug        string  `bson:"slug" json:"slug"`
	Views       int64   `bson:"views" json:"views"`
}

// Store is the document-collection boundary. Slug uniqueness is the
// caller's responsibility; Create appends whatever it is given.
type Store interface {
	// FindBySlug returns nil, nil when no record matches; absence is not
	// an error.
	FindBySlug(ctx context.Context, slug string) (*Article, error)

	// Create appends a new record and returns its document id.
	Create(ctx context.Context, a *Article) (string, error)

	// IncrementViews writes back views+1 for the record at slug. A missing
	// slug is a silent no-op.
	IncrementViews(ctx context.Context, slug string) error

	// TopByViews returns up to limit articles ordered by views descending.
	TopByViews(ctx context.Context, limit int) ([]*Article, error)
}
