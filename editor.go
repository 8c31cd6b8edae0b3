// editor.go
package prefsxml

import (
	"context"
	"errors"
)

// Editor applies command-line groups to a preferences document held by a Storage.
type Editor struct {
	config *Config
}

// New creates an Editor configured by opts.
func New(opts ...Option) *Editor {
	cfg := &Config{}

	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = NewDefaultLogger()
	}

	return &Editor{
		config: cfg,
	}
}

// Edit validates args as (flag, key, value) groups, applies them in order to the stored
// document and saves the result. Nothing is saved when any group is invalid.
func (e *Editor) Edit(ctx context.Context, args []string) error {
	if e.config.storage == nil {
		return ErrStorageUnavailable
	}

	groups, err := ParseGroups(args)
	if err != nil {
		return err
	}

	doc, err := e.Load(ctx)
	if err != nil {
		return err
	}

	for i, g := range groups {
		if err := e.apply(doc, g); err != nil {
			return err
		}
		e.config.logger.Debug("applied group", "index", i, "flag", g.Flag, "key", g.Key)
	}

	if err := e.config.storage.Save(ctx, doc); err != nil {
		return err
	}
	e.config.logger.Debug("wrote preferences", "entries", doc.Len())
	return nil
}

// Load returns the stored document. A missing, malformed or wrong-rooted document is
// replaced by an empty one without reporting an error. It fails only when ctx is done or
// no Storage is configured.
func (e *Editor) Load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.config.storage == nil {
		return nil, ErrStorageUnavailable
	}

	doc, err := e.config.storage.Load(ctx)
	switch {
	case err == nil:
		e.config.logger.Debug("loaded preferences", "entries", doc.Len())
		return doc, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, err
	case errors.Is(err, ErrNotFound):
		e.config.logger.Debug("no preferences file, starting empty")
	default:
		e.config.logger.Debug("recovered unreadable preferences file", "error", err)
	}
	return NewDocument(), nil
}

func (e *Editor) apply(doc *Document, g Group) error {
	entry := g.Entry()
	if prev, ok := doc.Lookup(entry.Key); ok && prev.Kind != entry.Kind {
		e.config.logger.Debug("replacing entry of another kind", "key", entry.Key, "from", prev.Kind, "to", entry.Kind)
	}
	return doc.Set(entry)
}
