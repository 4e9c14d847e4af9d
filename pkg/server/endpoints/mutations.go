package endpoints

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/safetynet/alerts/pkg/audit"
	"github.com/safetynet/alerts/pkg/identity"
	"github.com/safetynet/alerts/pkg/model"
	"github.com/safetynet/alerts/pkg/records"
	"github.com/safetynet/alerts/pkg/server"
	"github.com/safetynet/alerts/pkg/server/middleware"
)

// outcomes holds the response messages of one collection.
type outcomes struct {
	added, updated, deleted, notFound string
}

var messages = map[model.Collection]outcomes{
	model.CollectionPerson: {
		added:    "Person added successfully.",
		updated:  "Person updated successfully.",
		deleted:  "Person deleted successfully.",
		notFound: "Person not found.",
	},
	model.CollectionFirestation: {
		added:    "Firestation mapping added.",
		updated:  "Firestation mapping updated.",
		deleted:  "Firestation mapping deleted.",
		notFound: "Firestation mapping not found.",
	},
	model.CollectionMedicalRecord: {
		added:    "Medical record added.",
		updated:  "Medical record updated.",
		deleted:  "Medical record deleted.",
		notFound: "Medical record not found.",
	},
}

// mutationRecorder reports the outcome of a mutation to the audit log,
// metrics and application log, and writes the HTTP response.
type mutationRecorder struct {
	collection model.Collection
	audit      *audit.Logger
	metrics    *middleware.Metrics
	logger     *zap.Logger
}

func newMutationRecorder(s *server.Server, collection model.Collection) *mutationRecorder {
	return &mutationRecorder{
		collection: collection,
		audit:      s.Audit,
		metrics:    s.Metrics,
		logger:     s.Logger,
	}
}

func (m *mutationRecorder) record(r *http.Request, action audit.Action, key string, result audit.Result, err error) {
	event := audit.MutationEvent{
		Collection: m.collection,
		Action:     action,
		Key:        key,
		Result:     result,
	}
	if id, ok := identity.Get(r.Context()); ok {
		event.ClientIP = id.ClientIP()
		event.RequestID = id.RequestID
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	m.audit.Log(event)
	m.metrics.ObserveMutation(m.collection.String(), action.String(), string(result))

	if m.logger != nil {
		m.logger.Info(event.Message(),
			zap.String("collection", m.collection.String()),
			zap.String("action", action.String()),
			zap.String("key", key),
			zap.String("result", string(result)),
		)
	}
}

// invalid reports a rejected request.
func (m *mutationRecorder) invalid(w http.ResponseWriter, r *http.Request, action audit.Action, key string, err error) {
	m.record(r, action, key, audit.ResultInvalid, err)
	respondWithError(w, http.StatusBadRequest, err.Error())
}

// added finishes an add: 201 on success, 400 for a missing key.
func (m *mutationRecorder) added(w http.ResponseWriter, r *http.Request, key string, err error) {
	if err != nil {
		m.failed(w, r, audit.ActionAdd, key, err)
		return
	}
	m.record(r, audit.ActionAdd, key, audit.ResultSuccess, nil)
	respondWithMessage(w, http.StatusCreated, messages[m.collection].added)
}

// changed finishes an update or delete: 200 when found, 404 otherwise.
func (m *mutationRecorder) changed(w http.ResponseWriter, r *http.Request, action audit.Action, key string, found bool, err error) {
	if err != nil {
		m.failed(w, r, action, key, err)
		return
	}
	msgs := messages[m.collection]
	if !found {
		m.record(r, action, key, audit.ResultNotFound, nil)
		respondWithMessage(w, http.StatusNotFound, msgs.notFound)
		return
	}
	m.record(r, action, key, audit.ResultSuccess, nil)
	if action == audit.ActionDelete {
		respondWithMessage(w, http.StatusOK, msgs.deleted)
	} else {
		respondWithMessage(w, http.StatusOK, msgs.updated)
	}
}

func (m *mutationRecorder) failed(w http.ResponseWriter, r *http.Request, action audit.Action, key string, err error) {
	if errors.Is(err, records.ErrMissingKey) {
		m.invalid(w, r, action, key, err)
		return
	}
	m.record(r, action, key, audit.ResultInvalid, err)
	respondWithError(w, http.StatusInternalServerError, err.Error())
}

func nameKey(firstName, lastName string) string {
	return firstName + " " + lastName
}
