package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/spf13/cast"
)

// WebAppSource talks to the spreadsheet web app endpoint.
//
// Reads are GET <endpoint>?sheet=<table>&action=get plus filters.
// Writes are POST with a JSON command {sheet, action, id, data}.
type WebAppSource struct {
	endpoint   string
	httpClient *http.Client
}

// NewWebAppSource creates a source for endpoint with a per-request timeout.
func NewWebAppSource(endpoint string, timeout time.Duration) *WebAppSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebAppSource{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// command is the POST body of the write protocol.
type command struct {
	Sheet  string         `json:"sheet"`
	Action string         `json:"action"`
	ID     string         `json:"id,omitempty"`
	Data   map[string]any `json:"data,omitempty"`
}

// Query fetches every row of table. Filters are forwarded as query params.
func (s *WebAppSource) Query(ctx context.Context, table string, filters Filters) ([]Row, error) {
	if s.endpoint == "" {
		return nil, ErrNotConfigured
	}

	u, err := url.Parse(s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("sheet", table)
	q.Set("action", "get")
	filters.apply(q)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	env, err := s.do(req)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}

	rows, err := decodeRows(env.Data)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	return rows, nil
}

func (s *WebAppSource) Append(ctx context.Context, table string, data map[string]any) (Row, error) {
	return s.write(ctx, command{Sheet: table, Action: "append", Data: data})
}

func (s *WebAppSource) Update(ctx context.Context, table, id string, data map[string]any) (Row, error) {
	return s.write(ctx, command{Sheet: table, Action: "update", ID: id, Data: data})
}

func (s *WebAppSource) Delete(ctx context.Context, table, id string) error {
	_, err := s.write(ctx, command{Sheet: table, Action: "delete", ID: id})
	return err
}

func (s *WebAppSource) write(ctx context.Context, cmd command) (Row, error) {
	if s.endpoint == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("marshal command: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	env, err := s.do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", cmd.Action, cmd.Sheet, err)
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return Row{}, nil
	}
	var raw map[string]any
	if err := json.Unmarshal(env.Data, &raw); err != nil {
		// Some actions answer with a bare message or id, not a record.
		return Row{}, nil
	}
	return normalizeRow(raw), nil
}

func (s *WebAppSource) do(req *http.Request) (*envelope, error) {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		return nil, fmt.Errorf("%w: %q", ErrContentType, resp.Header.Get("Content-Type"))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if !env.Success {
		return nil, &RemoteError{Message: env.Message}
	}
	return &env, nil
}

func decodeRows(data json.RawMessage) ([]Row, error) {
	if len(data) == 0 || string(data) == "null" {
		return []Row{}, nil
	}
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal rows: %w", err)
	}
	rows := make([]Row, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, normalizeRow(r))
	}
	return rows, nil
}

// normalizeRow coerces every cell to a string. Nil and unsupported values
// become "".
func normalizeRow(raw map[string]any) Row {
	row := make(Row, len(raw))
	for k, v := range raw {
		row[k] = cast.ToString(v)
	}
	return row
}
