package search

import (
	"strings"
	"sync"
	"time"
)

const (
	DefaultLatency  = 300 * time.Millisecond
	UserProfilePath = "/user/"
)

// State is the widget state owned by an Engine.
type State struct {
	Query       string
	IsSearching bool
	ShowResults bool
}

// Intent describes the navigation a selection implies. The zero value means
// "stay on the page".
type Intent struct {
	Path string
}

func (i Intent) IsNavigation() bool {
	return i.Path != ""
}

// UserProfileIntent is where selecting a user result leads.
func UserProfileIntent(userID string) Intent {
	return Intent{Path: UserProfilePath + userID}
}

type Navigator interface {
	Navigate(path string)
}

type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

type ResultHandler func(Result)

type StateListener func(State)

type Option func(*Engine)

func WithLatency(d time.Duration) Option {
	return func(e *Engine) { e.latency = d }
}

func WithLimit(n int) Option {
	return func(e *Engine) { e.limit = n }
}

// WithDebounce makes every Search and Clear cancel indicator tasks that are
// still pending. Off by default: an older task may then clear IsSearching
// while a newer query is still within its latency window.
func WithDebounce(on bool) Option {
	return func(e *Engine) { e.debounce = on }
}

func WithScheduler(s Scheduler) Option {
	return func(e *Engine) { e.scheduler = s }
}

func WithNavigator(n Navigator) Option {
	return func(e *Engine) { e.navigator = n }
}

// WithResultHandler sets the callback for non-user selections.
func WithResultHandler(h ResultHandler) Option {
	return func(e *Engine) { e.onResultClick = h }
}

// WithStateListener is called after every state change including the delayed
// IsSearching flip. Calls are serialised and arrive in the order the changes
// happened. The listener may read the engine but must not change it.
func WithStateListener(l StateListener) Option {
	return func(e *Engine) { e.listener = l }
}

// Engine holds the search widget state over a fixed Source. Results are
// recomputed from the current query on every call to Results.
type Engine struct {
	source Source

	latency       time.Duration
	limit         int
	debounce      bool
	scheduler     Scheduler
	navigator     Navigator
	onResultClick ResultHandler
	listener      StateListener

	// notifyMu is taken before mu and held until the listener returns, so
	// listeners see states in the order they were produced.
	notifyMu sync.Mutex

	mu      sync.Mutex
	state   State
	pending map[uint64]Timer
	nextID  uint64
}

func NewEngine(source Source, opts ...Option) *Engine {
	e := &Engine{
		source:    source,
		latency:   DefaultLatency,
		limit:     DefaultLimit,
		scheduler: ClockScheduler(),
		pending:   make(map[uint64]Timer),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search stores query verbatim. A blank query hides the results at once; any
// other query shows them and raises IsSearching until the latency elapses.
func (e *Engine) Search(query string) {
	e.notifyMu.Lock()
	e.mu.Lock()
	e.state.Query = query
	if e.debounce {
		e.cancelLocked()
	}

	var settleID uint64
	scheduled := false
	if strings.TrimSpace(query) == "" {
		e.state.ShowResults = false
		e.state.IsSearching = false
	} else {
		e.state.IsSearching = true
		e.state.ShowResults = true
		settleID = e.reserveLocked()
		scheduled = true
	}
	snapshot := e.state
	e.mu.Unlock()

	e.notify(snapshot)
	e.notifyMu.Unlock()

	if scheduled {
		e.schedule(settleID)
	}
}

// reserveLocked registers a settle task before its timer exists, so that a
// cancel in between still wins.
func (e *Engine) reserveLocked() uint64 {
	id := e.nextID
	e.nextID++
	e.pending[id] = nil
	return id
}

// schedule runs without any engine lock held, so a Scheduler may call f
// before AfterFunc returns.
func (e *Engine) schedule(id uint64) {
	t := e.scheduler.AfterFunc(e.latency, func() { e.settle(id) })

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.pending[id]; ok {
		e.pending[id] = t
		return
	}
	// Already settled or cancelled.
	t.Stop()
}

func (e *Engine) settle(id uint64) {
	e.notifyMu.Lock()
	defer e.notifyMu.Unlock()

	e.mu.Lock()
	if _, ok := e.pending[id]; !ok {
		e.mu.Unlock()
		return
	}
	delete(e.pending, id)
	e.state.IsSearching = false
	snapshot := e.state
	e.mu.Unlock()

	e.notify(snapshot)
}

// Clear resets the query and both flags.
func (e *Engine) Clear() {
	e.notifyMu.Lock()
	defer e.notifyMu.Unlock()

	e.mu.Lock()
	if e.debounce {
		e.cancelLocked()
	}
	e.state = State{}
	e.mu.Unlock()

	e.notify(State{})
}

// SelectResult hides the results. A user result resolves to the user's
// profile, handed to the Navigator when there is one; the result handler is
// not called for it. Any other result goes to the result handler.
func (e *Engine) SelectResult(result Result) Intent {
	e.notifyMu.Lock()
	e.mu.Lock()
	e.state.ShowResults = false
	snapshot := e.state
	navigator := e.navigator
	handler := e.onResultClick
	e.mu.Unlock()

	e.notify(snapshot)
	e.notifyMu.Unlock()

	if result == nil {
		return Intent{}
	}

	if result.Type() == ResultTypeUser {
		intent := UserProfileIntent(result.ID())
		if navigator != nil {
			navigator.Navigate(intent.Path)
		}
		return intent
	}

	if handler != nil {
		handler(result)
	}
	return Intent{}
}

// SetShowResults lets the caller force the result list open or closed.
func (e *Engine) SetShowResults(show bool) {
	e.notifyMu.Lock()
	defer e.notifyMu.Unlock()

	e.mu.Lock()
	e.state.ShowResults = show
	snapshot := e.state
	e.mu.Unlock()

	e.notify(snapshot)
}

// CancelPending stops every scheduled IsSearching flip. IsSearching keeps
// whatever value it has.
func (e *Engine) CancelPending() {
	e.mu.Lock()
	e.cancelLocked()
	e.mu.Unlock()
}

func (e *Engine) cancelLocked() {
	for id, t := range e.pending {
		if t != nil {
			t.Stop()
		}
		delete(e.pending, id)
	}
}

// Pending is the number of scheduled flips that have neither fired nor been
// cancelled.
func (e *Engine) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.pending)
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) Query() string {
	return e.State().Query
}

func (e *Engine) IsSearching() bool {
	return e.State().IsSearching
}

func (e *Engine) ShowResults() bool {
	return e.State().ShowResults
}

func (e *Engine) Results() []Result {
	return Match(e.source, e.Query(), e.limit)
}

func (e *Engine) Limit() int {
	return e.limit
}

func (e *Engine) notify(s State) {
	if e.listener != nil {
		e.listener(s)
	}
}
