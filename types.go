package prefsxml

// Kind is the element tag an entry is stored under.
type Kind string

// Entry kinds this package writes. Files may contain others (int, long, float, set);
// those are carried through untouched.
const (
	// StringKind is a <string name="..."> element whose text is the value.
	StringKind Kind = "string"
	// BoolKind is a <boolean name="..." value="..."/> element.
	BoolKind Kind = "boolean"
)

// Command-line flags that introduce a group.
const (
	StringFlag = "--string"
	BoolFlag   = "--bool"
)

var flagKinds = map[string]Kind{
	StringFlag: StringKind,
	BoolFlag:   BoolKind,
}

// Entry is a single preference: one child element of the <map> root.
type Entry struct {
	// Kind is the element tag, e.g. "string" or "boolean".
	Kind Kind
	// Key is the value of the element's name attribute.
	Key string
	// Value is the element text for string entries and the value attribute otherwise.
	Value string
}

// Group is one (flag, key, value) triple from the command line.
type Group struct {
	Flag  string
	Key   string
	Value string
}

// Entry returns the entry the group writes.
func (g Group) Entry() Entry {
	return Entry{Kind: flagKinds[g.Flag], Key: g.Key, Value: g.Value}
}

// Config holds the internal configuration for an Editor.
// It is populated by applying functional Options in New.
type Config struct {
	// storage loads and saves the document being edited.
	storage Storage
	// logger receives debug records about loading, recovery and writes.
	logger Logger
}

// Option configures an Editor.
type Option func(*Config)

// WithStorage sets the Storage the Editor reads from and writes to.
// This option is mandatory; Edit fails with ErrStorageUnavailable without it.
func WithStorage(s Storage) Option {
	return func(c *Config) {
		c.storage = s
	}
}

// WithLogger sets the Logger used by the Editor.
// If not set, NewDefaultLogger is used.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.logger = l
	}
}
