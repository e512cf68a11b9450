package dashboard

import (
	"encoding/json"
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// The create endpoints are demo stubs: they validate input, log it, and
// discard it. The generated tables are immutable; a fetch after any number
// of accepted submissions returns identical rows. Keeping these as no-ops
// is part of the contract, not an omission.

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type createAccountRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateAccount validates a registration form and discards it.
func (h *Handlers) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		h.respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if !emailPattern.MatchString(req.Email) {
		h.respondError(w, http.StatusBadRequest, "invalid email address")
		return
	}
	h.accept(w, r, "account")
}

type createMatchRequest struct {
	SportType string `json:"sport_type"`
	Team1     string `json:"team1"`
	Team2     string `json:"team2"`
	Venue     string `json:"venue"`
}

// CreateMatch validates a start-scoring form and discards it.
func (h *Handlers) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req createMatchRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.SportType == "" || req.Team1 == "" || req.Team2 == "" {
		h.respondError(w, http.StatusBadRequest, "sport_type, team1 and team2 are required")
		return
	}
	if req.Team1 == req.Team2 {
		h.respondError(w, http.StatusBadRequest, "teams must be distinct")
		return
	}
	if !h.teamNames[req.Team1] || !h.teamNames[req.Team2] {
		h.respondError(w, http.StatusBadRequest, "unknown team name")
		return
	}
	h.accept(w, r, "match")
}

type createTournamentRequest struct {
	Name      string   `json:"name"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Teams     []string `json:"teams"`
}

// CreateTournament validates a tournament form and discards it.
func (h *Handlers) CreateTournament(w http.ResponseWriter, r *http.Request) {
	var req createTournamentRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		h.respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid start_date")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid end_date")
		return
	}
	if end.Before(start) {
		h.respondError(w, http.StatusBadRequest, "end_date before start_date")
		return
	}
	if len(req.Teams) < 2 {
		h.respondError(w, http.StatusBadRequest, "at least two teams are required")
		return
	}
	seen := make(map[string]bool, len(req.Teams))
	for _, team := range req.Teams {
		if seen[team] {
			h.respondError(w, http.StatusBadRequest, "teams must be distinct")
			return
		}
		seen[team] = true
	}
	h.accept(w, r, "tournament")
}

type createTicketRequest struct {
	IssueType   string `json:"issue_type"`
	Description string `json:"description"`
}

// CreateTicket validates a support-ticket form and discards it.
func (h *Handlers) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req createTicketRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.IssueType == "" || req.Description == "" {
		h.respondError(w, http.StatusBadRequest, "issue_type and description are required")
		return
	}
	h.accept(w, r, "ticket")
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// CreateContact validates a contact form and discards it.
func (h *Handlers) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" || req.Message == "" {
		h.respondError(w, http.StatusBadRequest, "name and message are required")
		return
	}
	if !emailPattern.MatchString(req.Email) {
		h.respondError(w, http.StatusBadRequest, "invalid email address")
		return
	}
	h.accept(w, r, "contact")
}

func (h *Handlers) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *Handlers) accept(w http.ResponseWriter, r *http.Request, kind string) {
	reference := uuid.New().String()
	h.logger.InfoContext(r.Context(), "demo write accepted and discarded",
		"kind", kind,
		"reference", reference,
	)
	h.respondJSON(w, http.StatusAccepted, map[string]string{
		"status":    "accepted",
		"reference": reference,
	})
}
