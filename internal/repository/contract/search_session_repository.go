package contract

import "adminsearch-be/pkg/search"

type SearchSessionRepository interface {
	Save(sessionID string, engine *search.Engine)
	Get(sessionID string) (*search.Engine, bool)
	Delete(sessionID string)
	Count() int
}
