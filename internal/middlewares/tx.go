package middlewares

import (
	"bytes"
	"context"
	"net/http"
	"sync"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/snake-arena/internal/logger"
)

// TxMiddleware runs the request inside a database transaction. The response is
// held back until the transaction ends: a status below 400 commits, anything
// else rolls back, and a failed commit turns the response into a 500.
// Callbacks registered with AfterCommit run only once the commit succeeded.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeJSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			state := &txState{tx: tx}
			bw := &bufferedResponseWriter{ResponseWriter: w}
			next.ServeHTTP(bw, r.WithContext(setTxToContext(r.Context(), state)))

			if bw.statusCode() >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to roll back transaction", "error", err)
				}
				bw.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				writeJSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			bw.flush()
			state.runAfterCommit()
		})
	}
}

type bufferedResponseWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *bufferedResponseWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
}

func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(b)
}

func (w *bufferedResponseWriter) statusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *bufferedResponseWriter) flush() {
	w.ResponseWriter.WriteHeader(w.statusCode())
	_, _ = w.ResponseWriter.Write(w.body.Bytes())
}

type txContextKey struct{}

type txState struct {
	tx *sqlx.Tx

	mu          sync.Mutex
	afterCommit []func()
}

func (s *txState) runAfterCommit() {
	s.mu.Lock()
	hooks := s.afterCommit
	s.afterCommit = nil
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, state *txState) context.Context {
	return context.WithValue(ctx, txContextKey{}, state)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	state, _ := ctx.Value(txContextKey{}).(*txState)
	if state == nil {
		return nil
	}
	return state.tx
}

// AfterCommit defers fn until the request transaction has committed. Without a
// transaction in ctx, fn runs immediately. fn is dropped on rollback.
func AfterCommit(ctx context.Context, fn func()) {
	state, _ := ctx.Value(txContextKey{}).(*txState)
	if state == nil {
		fn()
		return
	}

	state.mu.Lock()
	state.afterCommit = append(state.afterCommit, fn)
	state.mu.Unlock()
}
