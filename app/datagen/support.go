package datagen

import (
	"fmt"
	"time"
)

// ShareEvent is one app-share action by a user.
type ShareEvent struct {
	UserID    string    `json:"user_id"`
	Platform  string    `json:"platform"`
	Timestamp time.Time `json:"timestamp"`
	SharedTo  string    `json:"shared_to"`
}

var shareEventColumns = []Column{
	{Name: "user_id", Kind: KindString},
	{Name: "platform", Kind: KindString},
	{Name: "timestamp", Kind: KindTimestamp},
	{Name: "shared_to", Kind: KindString},
}

var shareAudiences = []string{"Friends", "Group", "Public"}

func buildShareEvents(seq *Sequence, accountIDs []string, win window) []ShareEvent {
	events := make([]ShareEvent, NumShareEvents)
	for i := range events {
		events[i] = ShareEvent{
			UserID:    seq.Pick(accountIDs),
			Platform:  seq.Pick(sharePlatforms),
			Timestamp: seq.Timestamp(win.start, win.end),
			SharedTo:  seq.Pick(shareAudiences),
		}
	}
	return events
}

func shareEventsTable(events []ShareEvent) *Table {
	t := newTable(TableShareEvents, shareEventColumns, len(events))
	for _, e := range events {
		t.appendRow(Row{e.UserID, e.Platform, e.Timestamp, e.SharedTo})
	}
	return t
}

// SupportTicket is one help-desk ticket. ResolvedAt is nil while the ticket
// is unresolved.
type SupportTicket struct {
	TicketID    string     `json:"ticket_id"`
	UserID      string     `json:"user_id"`
	IssueType   string     `json:"issue_type"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`
	AgentID     string     `json:"agent_id"`
}

var supportTicketColumns = []Column{
	{Name: "ticket_id", Kind: KindString},
	{Name: "user_id", Kind: KindString},
	{Name: "issue_type", Kind: KindString},
	{Name: "description", Kind: KindString},
	{Name: "status", Kind: KindString},
	{Name: "created_at", Kind: KindTimestamp},
	{Name: "resolved_at", Kind: KindTimestamp},
	{Name: "agent_id", Kind: KindString},
}

var ticketStatuses = []string{"Open", "In Progress", "Resolved"}

func buildSupportTickets(seq *Sequence, accountIDs []string, win window) []SupportTicket {
	tickets := make([]SupportTicket, NumSupportTickets)
	for i := range tickets {
		var resolved *time.Time
		// Draw order stays fixed whether or not the ticket resolves.
		resolvedAt := seq.Timestamp(win.start, win.end)
		if seq.Bool() {
			resolved = &resolvedAt
		}
		tickets[i] = SupportTicket{
			TicketID:    fmt.Sprintf("TICKET_%05d", i+1),
			UserID:      seq.Pick(accountIDs),
			IssueType:   seq.Pick(issueTypes),
			Description: seq.Paragraph(),
			Status:      seq.Pick(ticketStatuses),
			CreatedAt:   seq.Timestamp(win.start, win.end),
			ResolvedAt:  resolved,
			AgentID:     fmt.Sprintf("AGENT_%05d", seq.IntBetween(1, 50)),
		}
	}
	return tickets
}

func supportTicketsTable(tickets []SupportTicket) *Table {
	t := newTable(TableSupportTickets, supportTicketColumns, len(tickets))
	for _, tk := range tickets {
		var resolved any
		if tk.ResolvedAt != nil {
			resolved = *tk.ResolvedAt
		}
		t.appendRow(Row{
			tk.TicketID, tk.UserID, tk.IssueType, tk.Description,
			tk.Status, tk.CreatedAt, resolved, tk.AgentID,
		})
	}
	return t
}

// ContactMessage is one contact-form submission.
type ContactMessage struct {
	ContactID      string    `json:"contact_id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
	ResponseStatus string    `json:"response_status"`
}

var contactMessageColumns = []Column{
	{Name: "contact_id", Kind: KindString},
	{Name: "user_id", Kind: KindString},
	{Name: "name", Kind: KindString},
	{Name: "email", Kind: KindString},
	{Name: "message", Kind: KindString},
	{Name: "timestamp", Kind: KindTimestamp},
	{Name: "response_status", Kind: KindString},
}

var responseStatuses = []string{"Pending", "Responded"}

func buildContactMessages(seq *Sequence, accountIDs []string, win window) []ContactMessage {
	messages := make([]ContactMessage, NumContactMessages)
	for i := range messages {
		messages[i] = ContactMessage{
			ContactID:      fmt.Sprintf("CONT_%05d", i+1),
			UserID:         seq.Pick(accountIDs),
			Name:           seq.Name(),
			Email:          seq.Email(),
			Message:        seq.Paragraph(),
			Timestamp:      seq.Timestamp(win.start, win.end),
			ResponseStatus: seq.Pick(responseStatuses),
		}
	}
	return messages
}

func contactMessagesTable(messages []ContactMessage) *Table {
	t := newTable(TableContactMessages, contactMessageColumns, len(messages))
	for _, m := range messages {
		t.appendRow(Row{
			m.ContactID, m.UserID, m.Name, m.Email, m.Message,
			m.Timestamp, m.ResponseStatus,
		})
	}
	return t
}
