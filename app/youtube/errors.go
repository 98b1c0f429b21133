package youtube

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
)

// ResolutionError is returned when channel reference can't be turned into a channel id,
// either because the reference is malformed or because API doesn't know it.
type ResolutionError struct {
	Ref    string
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("can't resolve channel %q: %s", e.Ref, e.Reason)
}

// NotFoundError is returned for channel or video missing from API response
type NotFoundError struct {
	Kind string // channel or video
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// QuotaExceededError is returned when API rejects a request because the daily quota of the key is used up
type QuotaExceededError struct {
	Reason  string
	Message string
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("youtube api quota exceeded, %s: %s", e.Reason, e.Message)
}

var quotaReasons = map[string]bool{"quotaExceeded": true, "dailyLimitExceeded": true}

// quotaError extracts quota exhaustion from googleapi error, returns nil for any other error
func quotaError(err error) *QuotaExceededError {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) || gerr.Code != http.StatusForbidden {
		return nil
	}
	for _, item := range gerr.Errors {
		if quotaReasons[item.Reason] {
			return &QuotaExceededError{Reason: item.Reason, Message: gerr.Message}
		}
	}
	return nil
}
