package session

import (
	"context"
	"sync"

	"github.com/goliatone/go-print"
)

// Store owns the canonical session state. Every mutation funnels through
// Reduce under one mutex, so each event application is an atomic snapshot
// swap. Commands run concurrently and apply their terminal event whenever
// they finish: there is no queue, no per-command lock, and no cancellation,
// so two in-flight commands touching the roster resolve last-applied-wins.
// That hazard is part of the contract, not a bug to patch here.
type Store struct {
	mu    sync.RWMutex
	state State

	deps     *commandDeps
	logger   Logger
	debug    bool
	inflight sync.WaitGroup

	subMu       sync.Mutex
	subscribers map[int]func(State)
	nextSubID   int
}

// Option customizes store construction
type Option func(*Store)

// WithTransport sets the transport commands run against
func WithTransport(t Transport) Option {
	return func(s *Store) {
		if t != nil {
			s.deps.transport = t
		}
	}
}

// WithTokenStore sets the credential persistence used at construction and on
// login fulfillment
func WithTokenStore(ts TokenStore) Option {
	return func(s *Store) {
		if ts != nil {
			s.deps.tokens = ts
		}
	}
}

// WithCredentials shares a credential context between the store and a
// transport built elsewhere
func WithCredentials(c *Credentials) Option {
	return func(s *Store) {
		if c != nil {
			s.deps.credentials = c
		}
	}
}

// WithLogger overrides the store logger
func WithLogger(logger Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
			s.deps.logger = logger
		}
	}
}

// WithDebug dumps dispatched events and payloads through the logger
func WithDebug(debug bool) Option {
	return func(s *Store) {
		s.debug = debug
	}
}

// New constructs the store and derives the initial state. The token codec
// runs eagerly, exactly once: a credential persisted later in the process is
// not picked up until the next construction.
func New(opts ...Option) *Store {
	s := &Store{
		logger:      defLogger{},
		subscribers: map[int]func(State){},
		deps: &commandDeps{
			tokens:      NewMemoryTokenStore(),
			credentials: NewCredentials(),
			logger:      defLogger{},
		},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if s.deps.transport == nil {
		s.deps.transport = NewClient("", s.deps.credentials)
	}

	s.state = initialState(s.deps.tokens)

	// a persisted credential authenticates requests from the start
	if raw, ok := s.deps.tokens.Read(); ok && s.state.DecodedUser != nil {
		s.deps.credentials.Set(raw)
	}

	return s
}

// State returns a snapshot. Mutating the snapshot never affects the store.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Credentials exposes the credential context, shared with transports
func (s *Store) Credentials() *Credentials {
	return s.deps.credentials
}

// Subscribe registers a listener invoked with a snapshot after every applied
// event. The returned function unsubscribes it.
func (s *Store) Subscribe(fn func(State)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers, id)
	}
}

// Dispatch runs a command through its three-phase lifecycle. The pending
// event applies synchronously before Dispatch returns; the terminal event
// applies from a goroutine whenever the transport resolves. Callers that need
// the outcome read the state from a subscriber or after Wait.
func (s *Store) Dispatch(ctx context.Context, cmd Command) {
	if s.debug {
		s.logger.Debug("dispatch %s %s", cmd.Type(), print.MaybePrettyJSON(cmd))
	}

	s.apply(CommandPending{Command: Kind(cmd.Type())})

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.run(ctx, cmd)
	}()
}

func (s *Store) run(ctx context.Context, cmd Command) {
	kind := Kind(cmd.Type())

	if err := cmd.Validate(); err != nil {
		s.logger.Debug("%s validation failed: %v", cmd.Type(), err)
		s.apply(CommandRejected{Command: kind, Err: err.Error()})
		return
	}

	payload, err := cmd.execute(ctx, s.deps)
	if err != nil {
		s.logger.Error("%s failed: %v", cmd.Type(), err)
		s.apply(CommandRejected{Command: kind, Err: normalizeRejection(err)})
		return
	}

	s.apply(CommandFulfilled{Command: kind, Payload: payload})
}

// Wait blocks until every in-flight command has applied its terminal event.
// Shutdown and test aid, a running UI never needs it.
func (s *Store) Wait() {
	s.inflight.Wait()
}

// Logout resets the session to its logged-out shape and tears the credential
// context down so subsequent requests go out anonymous.
func (s *Store) Logout() {
	s.deps.credentials.Clear()
	s.apply(LoggedOutEvent{})
}

// OpenEditForm toggles the profile edit form on
func (s *Store) OpenEditForm() {
	s.apply(EditFormOpened{})
}

// CloseEditForm toggles the profile edit form off
func (s *Store) CloseEditForm() {
	s.apply(EditFormClosed{})
}

// SetPopup sets the popup toggle. Non-boolean values are a deliberate no-op.
func (s *Store) SetPopup(value any) {
	s.apply(PopupSet{Value: value})
}

// EditProfile shallow merges a partial edit into the logged-in profile
func (s *Store) EditProfile(patch UserPatch) {
	s.apply(ProfileEdited{Patch: patch})
}

func (s *Store) apply(event Event) {
	s.mu.Lock()
	s.state = Reduce(s.state, event)
	snapshot := s.state.clone()
	s.mu.Unlock()

	if s.debug {
		s.logger.Debug("applied %s", event.Type())
	}

	s.notify(snapshot)
}

func (s *Store) notify(snapshot State) {
	s.subMu.Lock()
	listeners := make([]func(State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		listeners = append(listeners, fn)
	}
	s.subMu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
