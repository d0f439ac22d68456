package storefront

import (
	"context"
	"errors"
	"fmt"
	"sync"

	catalog "github.com/murkotick/storefront-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-service/internal/pkg/database"
)

// Error codes reported in a GraphQL error's extensions.code.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeBadUserInput = "BAD_USER_INPUT"
	CodeUnavailable  = "UNAVAILABLE"
	CodeInternal     = "INTERNAL"
)

// apiError carries a code into the GraphQL errors array.
type apiError struct {
	code string
	msg  string
}

func (e *apiError) Error() string { return e.msg }

func (e *apiError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

func notFound(what, key string) error {
	return &apiError{code: CodeNotFound, msg: fmt.Sprintf("%s %q not found", what, key)}
}

// requestState collects what a single execution learned about the backend.
type requestState struct {
	mu          sync.Mutex
	unavailable bool
}

type stateKey struct{}

func withState(ctx context.Context) (context.Context, *requestState) {
	st := &requestState{}
	return context.WithValue(ctx, stateKey{}, st), st
}

func (s *requestState) markUnavailable() {
	s.mu.Lock()
	s.unavailable = true
	s.mu.Unlock()
}

func (s *requestState) isUnavailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unavailable
}

// mapError translates resolver errors into coded GraphQL errors and records
// database outages on the request so the transport can answer 503.
func mapError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, catalog.ErrEmptyCategoryName),
		errors.Is(err, catalog.ErrEmptyProductID):
		return &apiError{code: CodeBadUserInput, msg: err.Error()}
	}

	if database.IsUnavailable(err) || errors.Is(err, context.DeadlineExceeded) {
		if st, ok := ctx.Value(stateKey{}).(*requestState); ok {
			st.markUnavailable()
		}
		return &apiError{code: CodeUnavailable, msg: "database unavailable"}
	}

	return &apiError{code: CodeInternal, msg: "internal error"}
}
