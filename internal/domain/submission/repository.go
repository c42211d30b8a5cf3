package submission

import "context"

// Reader is the read-only view of the record store. Backup snapshots expose
// exactly this interface, which makes snapshot mutation impossible by
// construction.
type Reader interface {
	GetByID(ctx context.Context, id uint) (*Submission, error)
	ListAll(ctx context.Context) ([]*Submission, error)
	Search(ctx context.Context, query string) ([]*Submission, error)
}

// ReadCloser is a Reader over a resource that must be released after use,
// such as an opened backup snapshot. Close frees the underlying connection.
type ReadCloser interface {
	Reader
	Close() error
}

// Repository is the full contract of the live record store.
type Repository interface {
	Reader

	// Create inserts the record, assigning ID and SubmittedAt. A duplicate
	// account number yields a conflict error and no write.
	Create(ctx context.Context, sub *Submission) error

	// Update overwrites all mutable fields of the row identified by sub.ID.
	// The account number uniqueness is re-checked against the other rows.
	Update(ctx context.Context, sub *Submission) error

	// Delete removes the row permanently.
	Delete(ctx context.Context, id uint) error
}
