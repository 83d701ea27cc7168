// Package mockapi serves a fixture-backed fake of the character API.
//
// It answers the same two queries as the real service,
// GET {prefix}/characters?limit=N and GET {prefix}/characters?id=X, and can
// emulate either response shape and either id encoding so clients can be
// exercised against every API revision without network access.
package mockapi

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/gorilla/mux"
	"gopkg.in/yaml.v3"

	"github.com/rshade/slayerdex/internal/character"
)

// DefaultPrefix matches the path prefix of the public API.
const DefaultPrefix = "/api/v1"

// Shape selects how collections are encoded.
type Shape string

const (
	// ShapeWrapped encodes collections as {"content": [...]}.
	ShapeWrapped Shape = "wrapped"
	// ShapeBare encodes collections as a top-level array.
	ShapeBare Shape = "bare"
)

// ParseShape validates a shape name.
func ParseShape(s string) (Shape, error) {
	switch Shape(s) {
	case ShapeWrapped, ShapeBare:
		return Shape(s), nil
	default:
		return "", fmt.Errorf("unknown response shape %q (want %q or %q)", s, ShapeWrapped, ShapeBare)
	}
}

//go:embed fixtures.yaml
var fixturesYAML []byte

type fixtureFile struct {
	Characters []character.Detail `yaml:"characters"`
}

// Fixtures returns the embedded fixture characters.
func Fixtures() ([]character.Detail, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(fixturesYAML, &f); err != nil {
		return nil, fmt.Errorf("parsing embedded fixtures: %w", err)
	}
	return f.Characters, nil
}

// Server is an http.Handler emulating the character API.
type Server struct {
	Characters []character.Detail
	Shape      Shape
	// NumericIDs encodes ids that parse as integers as JSON numbers.
	NumericIDs bool

	router   *mux.Router
	requests atomic.Int64
}

// New builds a Server serving characters under prefix.
func New(prefix string, characters []character.Detail, shape Shape) *Server {
	s := &Server{
		Characters: characters,
		Shape:      shape,
		router:     mux.NewRouter(),
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	api := s.router.PathPrefix(prefix).Subrouter()
	api.HandleFunc("/characters", s.handleCharacters).Methods(http.MethodGet)
	return s
}

// NewFromFixtures builds a Server over the embedded fixtures.
func NewFromFixtures(prefix string, shape Shape) (*Server, error) {
	characters, err := Fixtures()
	if err != nil {
		return nil, err
	}
	return New(prefix, characters, shape), nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Requests returns how many character queries have been served.
func (s *Server) Requests() int64 {
	return s.requests.Load()
}

func (s *Server) handleCharacters(w http.ResponseWriter, r *http.Request) {
	s.requests.Add(1)
	q := r.URL.Query()

	if q.Has("id") {
		id := character.ID(q.Get("id"))
		items := []any{}
		for _, c := range s.Characters {
			if c.ID == id {
				items = append(items, s.encodeDetail(c))
				break
			}
		}
		s.write(w, items)
		return
	}

	limit := len(s.Characters)
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(n, limit)
	}

	items := make([]any, 0, limit)
	for _, c := range s.Characters[:limit] {
		items = append(items, s.encodeSummary(c.Summary))
	}
	s.write(w, items)
}

func (s *Server) write(w http.ResponseWriter, items []any) {
	var payload any = items
	if s.Shape != ShapeBare {
		payload = map[string]any{"content": items}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) encodeID(id character.ID) any {
	if s.NumericIDs {
		if _, err := strconv.ParseInt(id.String(), 10, 64); err == nil {
			return json.Number(id.String())
		}
	}
	return id.String()
}

func (s *Server) encodeSummary(c character.Summary) map[string]any {
	return map[string]any{
		"id":   s.encodeID(c.ID),
		"name": c.Name,
		"img":  c.Img,
	}
}

func (s *Server) encodeDetail(c character.Detail) map[string]any {
	m := s.encodeSummary(c.Summary)
	m["age"] = c.Age
	m["race"] = c.Race
	m["gender"] = c.Gender
	m["description"] = c.Description
	m["quote"] = c.Quote
	return m
}
