package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"exercisetracker/internal/domain"
	"exercisetracker/internal/logquery"
	"exercisetracker/internal/repository"
	"exercisetracker/internal/validation"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
)

// LogsResult is a user's filtered exercise log page plus the count of
// all entries matching the date range, independent of the limit.
type LogsResult struct {
	User  *domain.User
	Log   []domain.Exercise
	Count int
}

// UserService orchestrates user and exercise-log operations on top of
// the repository. Validation and log querying happen before/after the
// store round trip; the store itself stays a plain fetch/save party.
type UserService interface {
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	// AddExercise validates the raw input and, on success, appends the
	// normalized exercise to the user's log. Field errors are reported
	// together and mean nothing was persisted.
	AddExercise(ctx context.Context, userID string, in validation.ExerciseInput) (*domain.User, validation.FieldErrors, error)
	GetLogs(ctx context.Context, userID string, params logquery.Params) (*LogsResult, error)
}

// --- Service Implementation ---

type userService struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *userService) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		logrus.WithError(err).WithField("username", username).Error("lookup user failed")
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	user, err := s.userRepo.Insert(ctx, username)
	if err != nil {
		// The unique index still guards against a racing create.
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUserExists
		}
		logrus.WithError(err).WithField("username", username).Error("insert user failed")
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("list users failed")
		return nil, err
	}
	return users, nil
}

func (s *userService) AddExercise(ctx context.Context, userID string, in validation.ExerciseInput) (*domain.User, validation.FieldErrors, error) {
	// Reject bad input before touching the store.
	exercise, fieldErrs := validation.ValidateExercise(in, s.now())
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		// A malformed id cannot belong to any user.
		return nil, nil, ErrUserNotFound
	}

	user, err := s.userRepo.AppendExercise(ctx, id, exercise)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		logrus.WithError(err).WithField("userId", userID).Error("append exercise failed")
		return nil, nil, err
	}
	return user, nil, nil
}

func (s *userService) GetLogs(ctx context.Context, userID string, params logquery.Params) (*LogsResult, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		logrus.WithError(err).WithField("userId", userID).Error("find user failed")
		return nil, err
	}

	result, err := logquery.Run(user.Log, params)
	if err != nil {
		return nil, err
	}

	return &LogsResult{
		User:  user,
		Log:   result.Log,
		Count: result.Count,
	}, nil
}
