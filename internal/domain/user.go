package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the single persisted document of the system. Exercises live
// embedded in the user's log, in insertion order.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username string             `bson:"username" json:"username"` // unique, enforced by index
	Log      []Exercise         `bson:"log" json:"log"`
}

// Exercise is one log entry. Date holds the canonical descriptive form
// ("Mon Jan 02 2006"), never the raw YYYY-MM-DD input.
type Exercise struct {
	Description string  `bson:"description" json:"description"`
	Duration    float64 `bson:"duration" json:"duration"`
	Date        string  `bson:"date" json:"date"`
}

// DateLayout is the storage format for exercise dates. It matches the
// classic "toDateString" style: weekday, month, day, 4-digit year.
const DateLayout = "Mon Jan 02 2006"
