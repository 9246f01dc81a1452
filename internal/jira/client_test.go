package jira

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kanban-cli/internal/model"
)

func newTestClient(srv *httptest.Server) *Client {
	return &Client{
		BaseURL:    srv.URL,
		Email:      "me@example.com",
		APIToken:   "tok",
		HTTPClient: srv.Client(),
	}
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/api/3/search/jql" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("jql"); got != "project = ABC" {
			t.Fatalf("unexpected jql %q", got)
		}
		if _, _, ok := r.BasicAuth(); !ok {
			t.Fatalf("expected basic auth")
		}
		body := `{"issues":[
			{"key":"ABC-1","fields":{"summary":"First","status":{"name":"In Progress"},"issuetype":{"name":"Bug"},"assignee":{"displayName":"J Doe"}}},
			{"key":"ABC-2","fields":{"summary":"Second","status":{"name":"Done"},"issuetype":{"name":"Subtask"},"assignee":null}}
		]}`
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	tickets, err := newTestClient(srv).Search(context.Background(), "project = ABC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("expected 2 tickets, got %d", len(tickets))
	}
	if tickets[0].Key != "ABC-1" || tickets[0].Type != model.TypeBug || tickets[0].Assignee != "J Doe" {
		t.Fatalf("first ticket mismatch: %+v", tickets[0])
	}
	// A missing assignee and an unrecognized issue type must not fail.
	if tickets[1].Assignee != "unassigned" {
		t.Fatalf("expected unassigned fallback, got %q", tickets[1].Assignee)
	}
	if tickets[1].Type != model.TypeUnknown {
		t.Fatalf("expected unknown type, got %v", tickets[1].Type)
	}
}

func TestSearch_ErrorIncludesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errorMessages":["bad token"]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Search(context.Background(), "x")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "bad token") {
		t.Fatalf("expected response body in error, got %v", err)
	}
}

func TestIssue_ADFDescriptionAndComments(t *testing.T) {
	desc := map[string]any{
		"type": "doc",
		"content": []any{
			map[string]any{
				"type": "paragraph",
				"content": []any{
					map[string]any{"type": "text", "text": "Steps to reproduce"},
				},
			},
			map[string]any{
				"type": "paragraph",
				"content": []any{
					map[string]any{"type": "text", "text": "Log in"},
					map[string]any{"type": "hardBreak"},
					map[string]any{"type": "text", "text": "Boom"},
				},
			},
		},
	}
	payload := map[string]any{
		"key": "ABC-1",
		"fields": map[string]any{
			"summary":     "First",
			"status":      map[string]any{"name": "Open"},
			"issuetype":   map[string]any{"name": "Bug"},
			"assignee":    map[string]any{"emailAddress": "a@example.com"},
			"reporter":    map[string]any{"displayName": "R"},
			"priority":    map[string]any{"name": "High"},
			"labels":      []string{"auth"},
			"description": desc,
			"comment": map[string]any{
				"comments": []any{
					map[string]any{
						"author":  map[string]any{"displayName": "C"},
						"created": "2024-01-01T00:00:00Z",
						"body":    "plain string comment",
					},
				},
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/api/3/issue/ABC-1" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	d, err := newTestClient(srv).Issue(context.Background(), "ABC-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Key != "ABC-1" || d.Priority != "High" || d.Reporter != "R" {
		t.Fatalf("detail mismatch: %+v", d)
	}
	if d.Assignee != "a@example.com" {
		t.Fatalf("expected email fallback for assignee, got %q", d.Assignee)
	}
	if !strings.Contains(d.Description, "Steps to reproduce") || !strings.Contains(d.Description, "Log in\nBoom") {
		t.Fatalf("ADF description not flattened: %q", d.Description)
	}
	if len(d.Comments) != 1 || d.Comments[0].Body != "plain string comment" {
		t.Fatalf("comments mismatch: %+v", d.Comments)
	}
}
