package dberrors

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// IsDuplicateKeyError reports whether err is a MongoDB duplicate key error (E11000),
// either from a write or from building a unique index over existing duplicates.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if mongo.IsDuplicateKeyError(err) {
		return true
	}
	var cmdErr mongo.CommandError
	return errors.As(err, &cmdErr) && cmdErr.Code == 11000
}

// IsTimeout reports whether err is a driver or context timeout.
func IsTimeout(err error) bool {
	return mongo.IsTimeout(err) || mongo.IsNetworkError(err)
}
