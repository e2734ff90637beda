package reconcile

import (
	"context"

	"hostel-be-svc/internal/backend"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/normalize"
	"hostel-be-svc/internal/session"
	apperrors "hostel-be-svc/pkg/errors"
	"hostel-be-svc/pkg/logger"
)

// Source names reported in SourceStatus
const (
	SourceUser = backend.EndpointGetUser
	SourceRoom = backend.EndpointGetUserRoom
	SourceMenu = backend.EndpointGetFoodMenu
)

// SourceStatus reports how one fetch settled
type SourceStatus struct {
	Source  string `json:"source"`
	OK      bool   `json:"ok"`
	Skipped bool   `json:"skipped,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Outcome is the result of one reconciliation run
type Outcome struct {
	Merged  models.UserRecord
	Room    *models.RoomAssignment
	Sources []SourceStatus
	// Skipped is set when the cached user carried no identity to fetch with
	Skipped bool
	Changed bool
}

// Failed returns the number of sources that were tried and failed
func (o *Outcome) Failed() int {
	n := 0
	for _, s := range o.Sources {
		if !s.OK && !s.Skipped {
			n++
		}
	}
	return n
}

// Succeeded returns the number of sources that answered
func (o *Outcome) Succeeded() int {
	n := 0
	for _, s := range o.Sources {
		if s.OK {
			n++
		}
	}
	return n
}

// fetched is what one source contributes to a run
type fetched struct {
	patches []Patch
	room    *models.RoomAssignment
}

// Reconciler merges fresh backend data into the cached user
type Reconciler struct {
	client backend.Client
	cache  *session.Cache
	logger *logger.Logger
}

// NewReconciler creates a reconciler writing merged users back to cache
func NewReconciler(client backend.Client, cache *session.Cache, logger *logger.Logger) *Reconciler {
	return &Reconciler{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// Run fetches get_user and get_user_room concurrently for the cached user,
// merges the answers over it and writes the result back to the cache.
// Source failures are logged and reported in the Outcome, never returned.
//
// Precedence, lowest first: cached record, get_user, the user echoed by
// get_user_room, the room fields of get_user_room.
func (r *Reconciler) Run(ctx context.Context, cached models.UserRecord) *Outcome {
	if cached == nil {
		return &Outcome{Skipped: true}
	}

	id := normalize.UserID(cached)
	email := normalize.Email(cached)
	if id == "" && email == "" {
		return &Outcome{Merged: cached.Clone(), Skipped: true}
	}

	tasks := make([]Task[fetched], 0, 2)
	if id != "" {
		tasks = append(tasks, Task[fetched]{Source: SourceUser, Run: func(ctx context.Context) (fetched, error) {
			user, err := r.client.GetUser(ctx, id)
			if err != nil {
				return fetched{}, err
			}
			return fetched{patches: []Patch{{Source: SourceUser, Fields: normalize.UserPatch(user)}}}, nil
		}})
	}
	tasks = append(tasks, Task[fetched]{Source: SourceRoom, Run: func(ctx context.Context) (fetched, error) {
		assignment, err := r.client.GetUserRoom(ctx, backend.RoomLookup{ID: id, Email: email})
		if err != nil || assignment == nil {
			return fetched{}, err
		}
		return fetched{
			room: assignment,
			patches: []Patch{
				{Source: SourceRoom, Fields: normalize.UserPatch(assignment.User)},
				{Source: SourceRoom, Fields: normalize.RoomPatch(assignment)},
			},
		}, nil
	}})

	outcome := &Outcome{}
	if id == "" {
		outcome.Sources = append(outcome.Sources, SourceStatus{Source: SourceUser, Skipped: true})
	}

	// tasks are listed in precedence order and SettleAll keeps that order
	var patches []Patch
	for _, res := range SettleAll(ctx, tasks...) {
		outcome.Sources = append(outcome.Sources, r.status(res.Source, res.Err))
		if !res.OK() {
			continue
		}
		patches = append(patches, res.Value.patches...)
		if res.Value.room != nil {
			outcome.Room = res.Value.room
		}
	}

	outcome.Merged = Merge(cached, patches...)
	outcome.Changed = !outcome.Merged.Equal(cached)

	if outcome.Succeeded() > 0 && r.cache != nil {
		if err := r.cache.Set(ctx, outcome.Merged); err != nil {
			r.logger.WithError(err).Warn("Failed to write reconciled user back to session")
		}
	}

	return outcome
}

func (r *Reconciler) status(source string, err error) SourceStatus {
	if err == nil {
		return SourceStatus{Source: source, OK: true}
	}
	r.logger.WithError(err).WithField("source", source).Warn("Background fetch failed, keeping cached data")
	return SourceStatus{Source: source, Error: apperrors.MessageOf(err, err.Error())}
}
