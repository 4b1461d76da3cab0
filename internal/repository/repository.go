package repository

import (
	"context"

	"exercisetracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
	ErrConflict = RepositoryError("already exists")
)

// RepositoryError helps distinguish repository errors from driver errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository is the persistence contract the core consumes. The
// store is a plain fetch/save collaborator: all log query semantics
// live in the logquery package, not behind this interface.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Insert(ctx context.Context, username string) (*domain.User, error)
	// AppendExercise atomically appends one entry to the user's log and
	// returns the updated document.
	AppendExercise(ctx context.Context, id primitive.ObjectID, exercise domain.Exercise) (*domain.User, error)
}
