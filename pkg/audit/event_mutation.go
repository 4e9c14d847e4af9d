package audit

import (
	"fmt"

	"github.com/safetynet/alerts/pkg/model"
)

// MutationEvent represents a change to one of the record collections
type MutationEvent struct {
	Collection model.Collection
	Action     Action
	// Key is the natural key of the record: "First Last" or the address
	Key          string
	Result       Result
	ClientIP     string
	RequestID    string
	ErrorMessage string
}

func (e MutationEvent) MessageID() string {
	return e.Collection.String() + "-" + e.Action.String()
}

func (e MutationEvent) Message() string {
	subject := fmt.Sprintf("%s %q", e.Collection.Label(), e.Key)
	switch e.Result {
	case ResultSuccess:
		return fmt.Sprintf("%s: %s succeeded", subject, e.Action)
	case ResultNotFound:
		return fmt.Sprintf("%s: %s found no match", subject, e.Action)
	}
	msg := fmt.Sprintf("%s: %s rejected", subject, e.Action)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e MutationEvent) Severity() Severity {
	switch e.Result {
	case ResultSuccess:
		return SeverityNotice
	case ResultNotFound:
		return SeverityWarning
	}
	return SeverityError
}

func (e MutationEvent) Facility() int {
	return FacilityLocal0
}

func (e MutationEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDRecord: {
			"collection": e.Collection.String(),
			"key":        e.Key,
		},
		SDIDAction: {
			"operation": e.Action.String(),
			"result":    string(e.Result),
		},
	}
	if e.ClientIP != "" || e.RequestID != "" {
		sd[SDIDClient] = map[string]string{}
		if e.ClientIP != "" {
			sd[SDIDClient]["ip"] = e.ClientIP
		}
		if e.RequestID != "" {
			sd[SDIDClient]["request_id"] = e.RequestID
		}
	}
	return sd
}
