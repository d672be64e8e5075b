// Package sqlgraph provides a SQLite-backed graph implementing the
// wayfind.ContextGraph contract.
//
// Edge enumeration runs a query per expanded node, so a search over a
// Store genuinely suspends on storage: cancelling the step context aborts
// the row iteration, and the search stays resumable. The store is the
// reference backend for exercising the context-aware search constructors
// against something other than memory.
package sqlgraph

import (
	"context"
	"database/sql"
	"fmt"
	"iter"
	"sync"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/wayfindlabs/wayfind/pkg/wayfind"
)

// Edge is a directed, weighted edge between named nodes.
type Edge struct {
	F    string
	T    string
	Cost float64
}

// Store is a SQLite-backed edge store. It is suitable for single-process
// use; the underlying database may be a file or ":memory:".
type Store struct {
	db     *sql.DB
	edges  *sql.Stmt
	insert *sql.Stmt

	mu     sync.RWMutex
	cache  map[string][]Edge
	closed bool
}

// Compile-time contract check.
var _ wayfind.ContextGraph[string, Edge] = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithEdgeCache keeps each node's enumerated edges in an in-memory map
// owned by this Store, so repeated expansions of one node hit the database
// once. Use only with graphs that are not modified during the Store's
// lifetime; AddEdge invalidates the touched node.
func WithEdgeCache() Option {
	return func(s *Store) {
		s.cache = make(map[string][]Edge)
	}
}

// Open creates or opens an edge store at path (":memory:" for testing).
func Open(path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS edges (
			src TEXT NOT NULL,
			dst TEXT NOT NULL,
			cost REAL NOT NULL DEFAULT 0,
			PRIMARY KEY (src, dst)
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_edges_src
		ON edges(src)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create index: %w", err)
	}

	// Enumeration order is insertion order: upserts keep the original
	// rowid, so a fixed edge set always enumerates the same way and
	// searches over the store stay deterministic.
	edges, err := db.Prepare(`
		SELECT src, dst, cost FROM edges
		WHERE src = ?
		ORDER BY rowid
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare enumeration: %w", err)
	}

	insert, err := db.Prepare(`
		INSERT INTO edges (src, dst, cost)
		VALUES (?, ?, ?)
		ON CONFLICT(src, dst) DO UPDATE SET
			cost = excluded.cost
	`)
	if err != nil {
		edges.Close()
		db.Close()
		return nil, fmt.Errorf("prepare insert: %w", err)
	}

	s := &Store{db: db, edges: edges, insert: insert}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// AddEdge upserts a directed edge. Re-adding an existing edge replaces
// its cost.
func (s *Store) AddEdge(ctx context.Context, from, to string, cost float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if _, err := s.insert.ExecContext(ctx, from, to, cost); err != nil {
		return fmt.Errorf("add edge: %w", err)
	}
	if s.cache != nil {
		delete(s.cache, from)
	}
	return nil
}

// Edges enumerates the outbound edges of n in insertion order. Enumeration
// honours ctx: a cancelled context surfaces as a single (zero, err) pair
// and ends the sequence.
func (s *Store) Edges(ctx context.Context, n string) iter.Seq2[Edge, error] {
	return func(yield func(Edge, error) bool) {
		if cached, ok := s.cachedEdges(n); ok {
			for _, e := range cached {
				if ctx.Err() != nil {
					yield(Edge{}, ctx.Err())
					return
				}
				if !yield(e, nil) {
					return
				}
			}
			return
		}

		s.mu.RLock()
		if s.closed {
			s.mu.RUnlock()
			yield(Edge{}, ErrStoreClosed)
			return
		}
		rows, err := s.edges.QueryContext(ctx, n)
		s.mu.RUnlock()
		if err != nil {
			yield(Edge{}, fmt.Errorf("enumerate edges: %w", err))
			return
		}
		defer rows.Close()

		var all []Edge
		for rows.Next() {
			var e Edge
			if err := rows.Scan(&e.F, &e.T, &e.Cost); err != nil {
				yield(Edge{}, fmt.Errorf("scan edge: %w", err))
				return
			}
			all = append(all, e)
			if !yield(e, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(Edge{}, fmt.Errorf("iterate edges: %w", err))
			return
		}
		s.fillCache(n, all)
	}
}

// From returns the node e leaves.
func (s *Store) From(e Edge) string { return e.F }

// To returns the node e enters.
func (s *Store) To(e Edge) string { return e.T }

// Cost returns the cost recorded on e.
func (s *Store) Cost(e Edge) float64 { return e.Cost }

// CostFunc returns the store's cost lookup in the shape informed searches
// consume.
func (s *Store) CostFunc() wayfind.CostFunc[Edge, float64] {
	return s.Cost
}

// Close closes the store. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.edges.Close()
	s.insert.Close()
	return s.db.Close()
}

func (s *Store) cachedEdges(n string) ([]Edge, bool) {
	if s.cache == nil {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	cached, ok := s.cache[n]
	return cached, ok
}

// fillCache records a fully enumerated edge list. Partial enumerations
// never reach here, so the cache only ever holds complete answers.
func (s *Store) fillCache(n string, all []Edge) {
	if s.cache == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.cache[n] = all
	}
}
