package service

import (
	"context"
	"encoding/json"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-jmap-sync/models"
)

// fakeServer answers batches the way a JMAP server would, resolving result
// references against earlier results of the same request. Changes are
// scripted per entity kind; without a script the state jumps to the current
// one with no changes.
type fakeServer struct {
	mu sync.Mutex

	mailboxes  map[string]models.Mailbox
	threads    map[string]models.Thread
	emails     map[string]models.Email
	identities map[string]models.Identity
	states     map[models.EntityKind]string
	changes    map[models.EntityKind][]models.ChangesResponse

	queryState   string
	queryIDs     []string
	queryChanges []models.QueryChangesResponse

	// methodErrors maps a method name to the error type it fails with.
	methodErrors map[string]string
	// onSet overrides the default set response, which accepts everything.
	onSet func(name string, call models.SetCall) models.SetResponse
	fail  error

	requests []models.Request
	sets     []recordedSet
}

type recordedSet struct {
	Name string
	Call models.SetCall
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		mailboxes:    make(map[string]models.Mailbox),
		threads:      make(map[string]models.Thread),
		emails:       make(map[string]models.Email),
		identities:   make(map[string]models.Identity),
		states:       make(map[models.EntityKind]string),
		changes:      make(map[models.EntityKind][]models.ChangesResponse),
		methodErrors: make(map[string]string),
	}
}

// addThread stores a thread together with its emails.
func (s *fakeServer) addThread(threadID string, emailIDs ...string) {
	s.threads[threadID] = models.Thread{ID: threadID, EmailIDs: emailIDs}
	for _, id := range emailIDs {
		s.emails[id] = models.Email{
			ID:         id,
			ThreadID:   threadID,
			Subject:    "subject " + id,
			MailboxIDs: map[string]bool{"inbox": true},
		}
	}
}

func (s *fakeServer) Send(_ context.Context, req models.Request) (models.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)
	if s.fail != nil {
		return models.Response{}, s.fail
	}

	results := make(map[string]any, len(req.MethodCalls))
	var resp models.Response
	for _, inv := range req.MethodCalls {
		name, result := inv.Name, s.handle(inv, results)
		if errType, ok := s.methodErrors[inv.Name]; ok {
			name, result = models.MethodErrorName, models.MethodErrorResult{Type: errType}
		}
		results[inv.ID] = result

		ri, err := models.NewResponseInvocation(name, result, inv.ID)
		if err != nil {
			return models.Response{}, err
		}
		resp.MethodResponses = append(resp.MethodResponses, ri)

		if implicit, ok := implicitEmailSet(name, inv.Args); ok {
			ri, err = models.NewResponseInvocation(models.MethodName(models.KindEmail, models.VerbSet), implicit, inv.ID)
			if err != nil {
				return models.Response{}, err
			}
			resp.MethodResponses = append(resp.MethodResponses, ri)
		}
	}
	resp.SessionState = "session"
	return resp, nil
}

func (s *fakeServer) handle(inv models.Invocation, results map[string]any) any {
	kind, _ := models.KindOf(inv.Name)

	switch args := inv.Args.(type) {
	case models.GetCall:
		ids := args.IDs
		if args.IDsRef != nil {
			ids = resolve(results, args.IDsRef)
		}
		switch kind {
		case models.KindMailbox:
			return getResponse(s.states[kind], s.mailboxes, ids)
		case models.KindThread:
			return getResponse(s.states[kind], s.threads, ids)
		case models.KindIdentity:
			return getResponse(s.states[kind], s.identities, ids)
		default:
			return getResponse(s.states[kind], s.emails, ids)
		}
	case models.ChangesCall:
		for _, c := range s.changes[kind] {
			if c.OldState == args.SinceState {
				return c
			}
		}
		return models.ChangesResponse{OldState: args.SinceState, NewState: s.states[kind]}
	case models.QueryCall:
		start := args.Position
		if args.Anchor != "" {
			start = slices.Index(s.queryIDs, args.Anchor) + args.AnchorOffset
		}
		start = min(max(start, 0), len(s.queryIDs))
		end := len(s.queryIDs)
		if args.Limit > 0 {
			end = min(start+args.Limit, end)
		}
		return models.QueryResponse{
			QueryState:          s.queryState,
			CanCalculateChanges: true,
			Position:            start,
			IDs:                 slices.Clone(s.queryIDs[start:end]),
			Total:               len(s.queryIDs),
		}
	case models.QueryChangesCall:
		for _, c := range s.queryChanges {
			if c.OldQueryState == args.SinceQueryState {
				return c
			}
		}
		return models.QueryChangesResponse{OldQueryState: args.SinceQueryState, NewQueryState: s.queryState}
	case models.SetCall:
		s.sets = append(s.sets, recordedSet{Name: inv.Name, Call: args})
		if s.onSet != nil {
			return s.onSet(inv.Name, args)
		}
		return acceptAll(s.states[kind], args)
	default:
		return struct{}{}
	}
}

// implicitEmailSet is the Email/set a server runs after a successful
// EmailSubmission/set with onSuccessUpdateEmail.
func implicitEmailSet(name string, args any) (models.SetResponse, bool) {
	call, ok := args.(models.SetCall)
	if !ok || name != models.MethodName(models.KindEmailSubmission, models.VerbSet) || len(call.OnSuccessUpdateEmail) == 0 {
		return models.SetResponse{}, false
	}
	resp := models.SetResponse{Updated: make(map[string]json.RawMessage, len(call.OnSuccessUpdateEmail))}
	for id := range call.OnSuccessUpdateEmail {
		resp.Updated[id] = json.RawMessage("null")
	}
	return resp, true
}

func acceptAll(state string, call models.SetCall) models.SetResponse {
	resp := models.SetResponse{OldState: state, NewState: state}
	for cid := range call.Create {
		if resp.Created == nil {
			resp.Created = make(map[string]json.RawMessage)
		}
		resp.Created[cid] = json.RawMessage(`{"id":"mbx-` + cid + `"}`)
	}
	for id := range call.Update {
		if resp.Updated == nil {
			resp.Updated = make(map[string]json.RawMessage)
		}
		resp.Updated[id] = json.RawMessage("null")
	}
	return resp
}

func getResponse[T models.Entity](state string, objects map[string]T, ids []string) models.GetResponse[T] {
	resp := models.GetResponse[T]{State: state, List: []T{}}
	if ids == nil {
		for _, id := range slices.Sorted(maps.Keys(objects)) {
			resp.List = append(resp.List, objects[id])
		}
		return resp
	}
	for _, id := range ids {
		if obj, ok := objects[id]; ok {
			resp.List = append(resp.List, obj)
		} else {
			resp.NotFound = append(resp.NotFound, id)
		}
	}
	return resp
}

// resolve evaluates a result reference against the results answered so far.
// It never returns nil so that a reference is not mistaken for "all ids".
func resolve(results map[string]any, ref *models.ResultReference) []string {
	raw, _ := json.Marshal(results[ref.ResultOf])
	var doc any
	_ = json.Unmarshal(raw, &doc)

	out := []string{}
	walk(doc, strings.Split(strings.TrimPrefix(ref.Path, "/"), "/"), &out)
	return out
}

func walk(v any, path []string, out *[]string) {
	if len(path) == 0 {
		switch x := v.(type) {
		case string:
			*out = append(*out, x)
		case []any:
			for _, e := range x {
				walk(e, nil, out)
			}
		}
		return
	}

	switch x := v.(type) {
	case map[string]any:
		walk(x[path[0]], path[1:], out)
	case []any:
		if path[0] == "*" {
			for _, e := range x {
				walk(e, path[1:], out)
			}
		}
	}
}
