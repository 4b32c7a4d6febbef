// Package server exposes the glossary queries as a JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/teatak/glossary/glossary"
)

const maxBodyBytes = 1 << 20

// Handler serves the query endpoints over one loaded Index.
type Handler struct {
	ix      *glossary.Index
	seg     glossary.Segmenter
	version string
	log     *slog.Logger
}

// New builds the routed, middleware-wrapped handler. seg may be nil, in which
// case POST /segment is not served.
func New(ix *glossary.Index, seg glossary.Segmenter, version string, log *slog.Logger) http.Handler {
	h := &Handler{ix: ix, seg: seg, version: version, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /define", h.Define)
	mux.HandleFunc("GET /english", h.English)
	mux.HandleFunc("GET /search", h.Search)
	mux.HandleFunc("GET /search/english", h.SearchEnglish)
	mux.HandleFunc("GET /search/chinese", h.SearchChinese)
	mux.HandleFunc("GET /lookup", h.Lookup)
	mux.HandleFunc("GET /letters", h.Letters)
	mux.HandleFunc("GET /health", h.Health)
	if seg != nil {
		mux.HandleFunc("POST /segment", h.Segment)
	}

	return Chain(RequestID, Logger(log), Recovery(log))(mux)
}

// DefineResponse is returned by GET /define.
type DefineResponse struct {
	Word         string   `json:"word"`
	Definitions  []string `json:"definitions"`
	ChineseWords []string `json:"chinese_words"`
}

// Define handles GET /define?word=.
func (h *Handler) Define(w http.ResponseWriter, r *http.Request) {
	word, ok := requireParam(w, r, "word")
	if !ok {
		return
	}
	defs, err := h.ix.Define(word)
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}
	words, err := h.ix.ChineseWords(word)
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, DefineResponse{Word: word, Definitions: defs, ChineseWords: words})
}

// EnglishResponse is returned by GET /english.
type EnglishResponse struct {
	Word    string   `json:"word"`
	English []string `json:"english"`
}

// English handles GET /english?word= for a Chinese word.
func (h *Handler) English(w http.ResponseWriter, r *http.Request) {
	word, ok := requireParam(w, r, "word")
	if !ok {
		return
	}
	english, err := h.ix.EnglishFor(word)
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, EnglishResponse{Word: word, English: english})
}

// SearchResponse is returned by the search endpoints.
type SearchResponse struct {
	Query   string   `json:"query"`
	Results []string `json:"results"`
	Total   int      `json:"total"`
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request, fn func(string) []string) {
	q, ok := requireParam(w, r, "q")
	if !ok {
		return
	}
	results := fn(q)
	writeJSON(w, http.StatusOK, SearchResponse{Query: q, Results: results, Total: len(results)})
}

// Search handles GET /search?q= across both languages.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) { h.search(w, r, h.ix.Search) }

// SearchEnglish handles GET /search/english?q=.
func (h *Handler) SearchEnglish(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, h.ix.SearchEnglish)
}

// SearchChinese handles GET /search/chinese?q=.
func (h *Handler) SearchChinese(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, h.ix.SearchChinese)
}

// Lookup handles GET /lookup?word=.
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	word, ok := requireParam(w, r, "word")
	if !ok {
		return
	}
	res, err := h.ix.Lookup(word)
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// LetterJSON is one histogram bar.
type LetterJSON struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}

// LettersResponse is returned by GET /letters.
type LettersResponse struct {
	Letters []LetterJSON `json:"letters"`
	Total   int          `json:"total"`
}

// Letters handles GET /letters.
func (h *Handler) Letters(w http.ResponseWriter, r *http.Request) {
	counts := glossary.SortedLetters(h.ix.LetterFrequency())
	resp := LettersResponse{Letters: make([]LetterJSON, 0, len(counts))}
	for _, lc := range counts {
		resp.Letters = append(resp.Letters, LetterJSON{Letter: string(lc.Letter), Count: lc.Count})
		resp.Total += lc.Count
	}
	writeJSON(w, http.StatusOK, resp)
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Headwords int       `json:"headwords"`
	Timestamp time.Time `json:"timestamp"`
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Headwords: h.ix.Len(),
		Timestamp: time.Now(),
	})
}

// SegmentRequest is the body of POST /segment.
type SegmentRequest struct {
	Text string `json:"text"`
}

// PairJSON is one extracted Chinese word with its part of speech.
type PairJSON struct {
	Word string `json:"word"`
	POS  string `json:"pos,omitempty"`
}

// SegmentResponse shows how a definition fragment is tokenized and parsed.
type SegmentResponse struct {
	Tokens []string   `json:"tokens"`
	Pairs  []PairJSON `json:"pairs"`
}

// Segment handles POST /segment.
func (h *Handler) Segment(w http.ResponseWriter, r *http.Request) {
	var req SegmentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tokens := h.seg.Segment(req.Text)
	pairs := glossary.ExtractChineseWords(tokens)
	resp := SegmentResponse{Tokens: tokens, Pairs: make([]PairJSON, 0, len(pairs))}
	for _, p := range pairs {
		resp.Pairs = append(resp.Pairs, PairJSON{Word: p.Word, POS: p.POS})
	}
	writeJSON(w, http.StatusOK, resp)
}

func requireParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	q := r.URL.Query()
	if !q.Has(name) {
		writeError(w, http.StatusBadRequest, "missing query parameter "+name)
		return "", false
	}
	return q.Get(name), true
}

func (h *Handler) writeQueryError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, glossary.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	h.log.ErrorContext(r.Context(), "query failed", slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, "internal server error")
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
