// Package jira fetches tickets from a Jira-compatible tracker over its
// REST v3 API. It is the board's only I/O boundary: a fetch either
// returns a complete batch of tickets or an error, never a partial
// result.
package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kanban-cli/internal/config"
	"kanban-cli/internal/model"
)

type Client struct {
	BaseURL  string
	Email    string
	APIToken string

	// HTTPClient is overridable for tests; nil means a default client
	// with a sane timeout.
	HTTPClient *http.Client
}

// NewClient builds a client from config, validating that the
// connection fields are present.
func NewClient(cfg config.Config) (*Client, error) {
	if cfg.Jira.URL == "" {
		return nil, fmt.Errorf("jira url not configured; set JIRA_URL or JIRA_SITE, or run `kanban init`")
	}
	if cfg.Jira.Email == "" {
		return nil, fmt.Errorf("jira email not configured; set JIRA_USER or JIRA_EMAIL")
	}
	if cfg.Jira.APIToken == "" {
		return nil, fmt.Errorf("jira api token not configured; set JIRA_API_TOKEN")
	}
	return &Client{
		BaseURL:  strings.TrimRight(cfg.Jira.URL, "/"),
		Email:    cfg.Jira.Email,
		APIToken: cfg.Jira.APIToken,
	}, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := strings.TrimRight(c.BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.Email, c.APIToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("jira request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("jira request failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type searchResponse struct {
	Issues []issue `json:"issues"`
}

type issue struct {
	Key    string `json:"key"`
	Fields fields `json:"fields"`
}

type fields struct {
	Summary   string          `json:"summary"`
	Status    named           `json:"status"`
	IssueType named           `json:"issuetype"`
	Assignee  *user           `json:"assignee"`
	Reporter  *user           `json:"reporter"`
	Priority  *named          `json:"priority"`
	Created   string          `json:"created"`
	Updated   string          `json:"updated"`
	Labels    []string        `json:"labels"`
	Desc      json.RawMessage `json:"description"`
	Comment   *commentPage    `json:"comment"`
}

type named struct {
	Name string `json:"name"`
}

type user struct {
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
}

type commentPage struct {
	Comments []comment `json:"comments"`
}

type comment struct {
	Author  *user           `json:"author"`
	Created string          `json:"created"`
	Body    json.RawMessage `json:"body"`
}

func (u *user) label(fallback string) string {
	if u == nil {
		return fallback
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if u.EmailAddress != "" {
		return u.EmailAddress
	}
	return fallback
}

// Search runs a JQL query and returns the matching tickets.
func (c *Client) Search(ctx context.Context, jql string) ([]model.Ticket, error) {
	q := url.Values{}
	q.Set("jql", jql)
	q.Set("maxResults", "100")
	q.Set("fields", "key,summary,status,issuetype,assignee")

	var resp searchResponse
	if err := c.get(ctx, "/rest/api/3/search/jql", q, &resp); err != nil {
		return nil, err
	}

	tickets := make([]model.Ticket, 0, len(resp.Issues))
	for _, is := range resp.Issues {
		tickets = append(tickets, model.Ticket{
			Key:      is.Key,
			Type:     model.ParseTicketType(is.Fields.IssueType.Name),
			Summary:  is.Fields.Summary,
			Status:   is.Fields.Status.Name,
			Assignee: is.Fields.Assignee.label("unassigned"),
		})
	}
	return tickets, nil
}

// Issue fetches the full detail view of one ticket, flattening
// Atlassian Document Format description/comment bodies to plain text.
func (c *Client) Issue(ctx context.Context, key string) (model.TicketDetail, error) {
	var is issue
	if err := c.get(ctx, "/rest/api/3/issue/"+url.PathEscape(key), nil, &is); err != nil {
		return model.TicketDetail{}, err
	}

	d := model.TicketDetail{
		Ticket: model.Ticket{
			Key:      is.Key,
			Type:     model.ParseTicketType(is.Fields.IssueType.Name),
			Summary:  is.Fields.Summary,
			Status:   is.Fields.Status.Name,
			Assignee: is.Fields.Assignee.label("unassigned"),
		},
		Reporter:    is.Fields.Reporter.label(""),
		Created:     is.Fields.Created,
		Updated:     is.Fields.Updated,
		Labels:      is.Fields.Labels,
		Description: bodyText(is.Fields.Desc),
	}
	if is.Fields.Priority != nil {
		d.Priority = is.Fields.Priority.Name
	}
	if is.Fields.Comment != nil {
		for _, cm := range is.Fields.Comment.Comments {
			d.Comments = append(d.Comments, model.Comment{
				Author:  cm.Author.label("Unknown"),
				Created: cm.Created,
				Body:    bodyText(cm.Body),
			})
		}
	}
	return d, nil
}

// bodyText handles the three shapes Jira uses for rich-text fields:
// plain string, ADF document object, or null.
func bodyText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var doc adfNode
	if err := json.Unmarshal(raw, &doc); err == nil {
		return adfText(doc)
	}
	return ""
}
