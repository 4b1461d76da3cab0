package api

import (
	"errors"
	"net/http"

	"exercisetracker/internal/domain"
	"exercisetracker/internal/logquery"
	"exercisetracker/internal/service"
	"exercisetracker/internal/validation"

	"github.com/gin-gonic/gin"
)

// Client-facing error messages. Field-level messages for exercise input
// live in the validation package.
const (
	msgUsernameRequired = "Username is required."
	msgUserExists       = "User already exists."
	msgUserNotFound     = "User not found."
	msgInvalidDate      = "Invalid date format."
	msgServerError      = "Internal server error."
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- DTOs for API (Data Transfer Objects) ---

type CreateUserRequest struct {
	Username string `json:"username" form:"username"`
}

// CreateExerciseRequest keeps every field textual so that a bad value
// surfaces as a field error from validation instead of a binding error.
type CreateExerciseRequest struct {
	Description string `json:"description" form:"description"`
	Duration    string `json:"duration" form:"duration"`
	Date        string `json:"date" form:"date"`
}

type ExerciseResponse struct {
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

// UserResponse is the DTO for create/append/log responses. Count is the
// log length after an append, or the matched-range size for log queries.
type UserResponse struct {
	Username string             `json:"username"`
	ID       string             `json:"_id"`
	Count    int                `json:"count"`
	Log      []ExerciseResponse `json:"log"`
}

// UserRecord is the DTO for the user listing, mirroring the stored
// document shape.
type UserRecord struct {
	Username string             `json:"username"`
	ID       string             `json:"_id"`
	Log      []ExerciseResponse `json:"log"`
}

func MapExercisesToResponse(log []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(log))
	for i, ex := range log {
		responses[i] = ExerciseResponse{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        ex.Date,
		}
	}
	return responses
}

func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		Username: user.Username,
		ID:       user.ID.Hex(),
		Count:    len(user.Log),
		Log:      MapExercisesToResponse(user.Log),
	}
}

func MapUsersToRecords(users []domain.User) []UserRecord {
	records := make([]UserRecord, len(users))
	for i, user := range users {
		records[i] = UserRecord{
			Username: user.Username,
			ID:       user.ID.Hex(),
			Log:      MapExercisesToResponse(user.Log),
		}
	}
	return records
}

// --- Handler Methods ---

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, msgServerError)
		return
	}
	c.JSON(http.StatusOK, MapUsersToRecords(users))
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	// A malformed body leaves the username empty, which the service
	// rejects with the same bad-request answer.
	_ = c.ShouldBind(&req)

	user, err := h.userService.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameRequired):
			abortWithError(c, http.StatusBadRequest, msgUsernameRequired)
		case errors.Is(err, service.ErrUserExists):
			abortWithError(c, http.StatusConflict, msgUserExists)
		default:
			abortWithError(c, http.StatusInternalServerError, msgServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// AddExercise handles POST /api/users/:id/exercises.
func (h *UserHandler) AddExercise(c *gin.Context) {
	var req CreateExerciseRequest
	_ = c.ShouldBind(&req)

	in := validation.ExerciseInput{
		Description: req.Description,
		Duration:    req.Duration,
		Date:        req.Date,
	}

	user, fieldErrs, err := h.userService.AddExercise(c.Request.Context(), c.Param("id"), in)
	if len(fieldErrs) > 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": fieldErrs})
		return
	}
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, msgUserNotFound)
		} else {
			abortWithError(c, http.StatusInternalServerError, msgServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// GetLogs handles GET /api/users/:id/logs with optional from/to/limit
// query parameters.
func (h *UserHandler) GetLogs(c *gin.Context) {
	params := logquery.Params{
		From:  c.Query("from"),
		To:    c.Query("to"),
		Limit: c.Query("limit"),
	}

	result, err := h.userService.GetLogs(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, msgUserNotFound)
		case errors.Is(err, logquery.ErrInvalidDateFormat):
			abortWithError(c, http.StatusBadRequest, msgInvalidDate)
		default:
			abortWithError(c, http.StatusInternalServerError, msgServerError)
		}
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		Username: result.User.Username,
		ID:       result.User.ID.Hex(),
		Count:    result.Count,
		Log:      MapExercisesToResponse(result.Log),
	})
}
