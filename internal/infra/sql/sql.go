package sql

// Database is a managed connection to the cellar's backing store.
type Database interface {
	Open() error
	Close()
}
