// Package handler provides the HTTP handlers of the status server.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sevigo/pr-advisor/internal/core"
)

// LedgerReader is the read-only view of the ledger the handlers need.
type LedgerReader interface {
	Snapshot() map[string]string
	Title(id string) (string, bool)
}

// Entry is one processed pull request.
type Entry struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
}

// HistoryResponse is the body of GET /api/v1/history.
type HistoryResponse struct {
	Repository string  `json:"repository"`
	Count      int     `json:"count"`
	Entries    []Entry `json:"entries"`
}

// HistoryHandler serves the processed-request ledger.
type HistoryHandler struct {
	repo   core.Repository
	ledger LedgerReader
	logger *slog.Logger
}

// NewHistoryHandler creates a handler for the ledger of repo.
func NewHistoryHandler(repo core.Repository, ledger LedgerReader, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{repo: repo, ledger: ledger, logger: logger}
}

// List writes every ledger entry, ordered by pull request number.
func (h *HistoryHandler) List(w http.ResponseWriter, _ *http.Request) {
	entries := SortedEntries(h.ledger.Snapshot())
	h.writeJSON(w, http.StatusOK, HistoryResponse{
		Repository: h.repo.FullName(),
		Count:      len(entries),
		Entries:    entries,
	})
}

// Get writes the entry for the pull request in the {number} URL parameter.
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "number")
	number, err := strconv.Atoi(raw)
	if err != nil || number <= 0 {
		http.Error(w, "Invalid pull request number", http.StatusBadRequest)
		return
	}

	title, ok := h.ledger.Title(strconv.Itoa(number))
	if !ok {
		http.Error(w, "Pull request not in history", http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, Entry{Number: number, Title: title})
}

func (h *HistoryHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// SortedEntries converts a ledger snapshot into entries ordered by number.
// Keys that are not numbers sort last, by key.
func SortedEntries(snapshot map[string]string) []Entry {
	type keyed struct {
		key string
		num int
		ok  bool
	}
	keys := make([]keyed, 0, len(snapshot))
	for k := range snapshot {
		n, err := strconv.Atoi(k)
		keys = append(keys, keyed{key: k, num: n, ok: err == nil})
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.ok != b.ok {
			return a.ok
		}
		if a.ok && a.num != b.num {
			return a.num < b.num
		}
		return a.key < b.key
	})

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Number: k.num, Title: snapshot[k.key]})
	}
	return entries
}
