package prefsxml

import "context"

// Storage defines the methods required for a preferences document backend.
//
// Load returns ErrNotFound when there is nothing to read and an error wrapping
// ErrMalformed when the stored bytes are not a <map> document. The Editor recovers
// from any Load error by starting with an empty document.
type Storage interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
	Close() error
}
