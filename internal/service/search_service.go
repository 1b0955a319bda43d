// FILE: internal/service/search_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"adminsearch-be/internal/config"
	"adminsearch-be/internal/dto"
	"adminsearch-be/internal/mapper"
	"adminsearch-be/internal/pkg/logger"
	"adminsearch-be/internal/repository/contract"
	adminEvents "adminsearch-be/pkg/admin/events"
	"adminsearch-be/pkg/search"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound   = errors.New("search session not found")
	ErrResultNotFound    = errors.New("result is not in the session's current results")
	ErrInvalidResultType = errors.New("invalid search result type")
)

type ISearchService interface {
	Query(ctx context.Context, query string) (*dto.SearchQueryResponse, error)
	OpenSession(ctx context.Context) (*dto.SearchStateResponse, error)
	State(ctx context.Context, sessionID string) (*dto.SearchStateResponse, error)
	Search(ctx context.Context, sessionID, query string) (*dto.SearchStateResponse, error)
	Clear(ctx context.Context, sessionID string) (*dto.SearchStateResponse, error)
	Dismiss(ctx context.Context, sessionID string) (*dto.SearchStateResponse, error)
	Select(ctx context.Context, sessionID string, req *dto.SelectResultRequest) (*dto.SelectResultResponse, error)
	CloseSession(ctx context.Context, sessionID string) error
}

// StateNotifier receives every state change of every session.
type StateNotifier interface {
	PublishState(sessionID string, state dto.SearchStateResponse)
}

type searchService struct {
	source     search.Source
	sessions   contract.SearchSessionRepository
	notifier   StateNotifier
	publisher  adminEvents.Publisher
	logger     logger.ILogger
	cfg        config.SearchConfig
	engineOpts []search.Option
}

// NewSearchService wires engines to the notifier (state pushes) and the
// publisher (non-user selections). Either may be nil. engineOpts are applied
// after the config-derived options.
func NewSearchService(
	source search.Source,
	sessions contract.SearchSessionRepository,
	notifier StateNotifier,
	publisher adminEvents.Publisher,
	logger logger.ILogger,
	cfg config.SearchConfig,
	engineOpts ...search.Option,
) ISearchService {
	return &searchService{
		source:     source,
		sessions:   sessions,
		notifier:   notifier,
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
		engineOpts: engineOpts,
	}
}

func (s *searchService) Query(ctx context.Context, query string) (*dto.SearchQueryResponse, error) {
	results := mapper.ToSearchResultResponses(search.Match(s.source, query, s.cfg.ResultLimit))
	return &dto.SearchQueryResponse{
		Query:   query,
		Count:   len(results),
		Results: results,
	}, nil
}

func (s *searchService) OpenSession(ctx context.Context) (*dto.SearchStateResponse, error) {
	sessionID := uuid.NewString()
	engine := s.newEngine(sessionID)
	s.sessions.Save(sessionID, engine)

	s.logger.Info("SEARCH", "Session opened", map[string]interface{}{
		"session_id":     sessionID,
		"active_session": s.sessions.Count(),
	})

	res := snapshot(sessionID, engine)
	return &res, nil
}

func (s *searchService) newEngine(sessionID string) *search.Engine {
	opts := []search.Option{
		search.WithLatency(s.cfg.Latency),
		search.WithLimit(s.cfg.ResultLimit),
		search.WithDebounce(s.cfg.Debounce),
		search.WithResultHandler(func(r search.Result) {
			if s.publisher == nil {
				return
			}
			s.publisher.PublishResultSelected(context.Background(), sessionID, mapper.ToSearchResultResponse(r))
		}),
		search.WithStateListener(func(st search.State) {
			if s.notifier == nil {
				return
			}
			results := search.Match(s.source, st.Query, s.cfg.ResultLimit)
			s.notifier.PublishState(sessionID, mapper.ToSearchStateResponse(sessionID, st, results))
		}),
	}
	opts = append(opts, s.engineOpts...)
	return search.NewEngine(s.source, opts...)
}

func (s *searchService) engine(sessionID string) (*search.Engine, error) {
	engine, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return engine, nil
}

func snapshot(sessionID string, engine *search.Engine) dto.SearchStateResponse {
	return mapper.ToSearchStateResponse(sessionID, engine.State(), engine.Results())
}

func (s *searchService) State(ctx context.Context, sessionID string) (*dto.SearchStateResponse, error) {
	engine, err := s.engine(sessionID)
	if err != nil {
		return nil, err
	}
	res := snapshot(sessionID, engine)
	return &res, nil
}

func (s *searchService) Search(ctx context.Context, sessionID, query string) (*dto.SearchStateResponse, error) {
	engine, err := s.engine(sessionID)
	if err != nil {
		return nil, err
	}

	engine.Search(query)
	res := snapshot(sessionID, engine)

	s.logger.Debug("SEARCH", "Query updated", map[string]interface{}{
		"session_id": sessionID,
		"query":      query,
		"matches":    len(res.Results),
	})
	return &res, nil
}

func (s *searchService) Clear(ctx context.Context, sessionID string) (*dto.SearchStateResponse, error) {
	engine, err := s.engine(sessionID)
	if err != nil {
		return nil, err
	}
	engine.Clear()
	res := snapshot(sessionID, engine)
	return &res, nil
}

func (s *searchService) Dismiss(ctx context.Context, sessionID string) (*dto.SearchStateResponse, error) {
	engine, err := s.engine(sessionID)
	if err != nil {
		return nil, err
	}
	engine.SetShowResults(false)
	res := snapshot(sessionID, engine)
	return &res, nil
}

func (s *searchService) Select(ctx context.Context, sessionID string, req *dto.SelectResultRequest) (*dto.SelectResultResponse, error) {
	resultType := search.ResultType(req.Type)
	if !resultType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidResultType, req.Type)
	}

	engine, err := s.engine(sessionID)
	if err != nil {
		return nil, err
	}

	var selected search.Result
	for _, r := range engine.Results() {
		if r.Type() == resultType && r.ID() == req.Id {
			selected = r
			break
		}
	}
	if selected == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrResultNotFound, req.Type, req.Id)
	}

	intent := engine.SelectResult(selected)

	s.logger.Info("SEARCH", "Result selected", map[string]interface{}{
		"session_id": sessionID,
		"type":       req.Type,
		"id":         req.Id,
		"redirect":   intent.Path,
	})

	return &dto.SelectResultResponse{
		Id:         selected.ID(),
		Type:       string(selected.Type()),
		Redirect:   intent.Path,
		Dispatched: s.publisher != nil && !intent.IsNavigation(),
	}, nil
}

func (s *searchService) CloseSession(ctx context.Context, sessionID string) error {
	if _, err := s.engine(sessionID); err != nil {
		return err
	}
	// Eviction cancels the engine's pending tasks.
	s.sessions.Delete(sessionID)

	s.logger.Info("SEARCH", "Session closed", map[string]interface{}{"session_id": sessionID})
	return nil
}
