// Package directory reads the published sales-directory spreadsheet.
// Two CSV exports of the same sheet back it: the sales view (agent
// activity) and the accounts view (login credentials). Rows are split
// naively on commas with no quote handling; a value containing a comma
// will misalign columns. Nothing is cached; every call re-fetches.
package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"checkin-backend/internal/models"
)

// ErrFetchTimeout marks a directory fetch that hit the HTTP deadline,
// so the handler can report it apart from a plain upstream failure.
var ErrFetchTimeout = errors.New("directory fetch timed out")

const fetchTimeout = 10 * time.Second

type Client struct {
	sheetURL    string
	accountsURL string
	httpClient  *http.Client
}

func NewClient(sheetURL, accountsURL string) *Client {
	return &Client{
		sheetURL:    sheetURL,
		accountsURL: accountsURL,
		httpClient:  &http.Client{Timeout: fetchTimeout},
	}
}

// FetchDirectory returns the sales agent entries from the sales view.
// Columns: 0 name, 1 last activity date, 2 days since last activity, 3 type.
func (c *Client) FetchDirectory(ctx context.Context) ([]models.SalesAgentEntry, error) {
	body, err := c.fetch(ctx, c.sheetURL)
	if err != nil {
		return nil, err
	}

	var entries []models.SalesAgentEntry
	for _, cols := range parseRows(body) {
		entry := models.SalesAgentEntry{
			Name:             column(cols, 0),
			LastActivityDate: column(cols, 1),
			Type:             column(cols, 3),
		}
		if days := column(cols, 2); days != "" {
			if n, err := strconv.Atoi(days); err == nil {
				entry.DaysSinceLast = &n
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// FetchCredentials returns the login credentials from the accounts view.
// Columns: 0 name, 4 username, 5 password.
func (c *Client) FetchCredentials(ctx context.Context) ([]models.Credential, error) {
	body, err := c.fetch(ctx, c.accountsURL)
	if err != nil {
		return nil, err
	}

	var creds []models.Credential
	for _, cols := range parseRows(body) {
		creds = append(creds, models.Credential{
			Name:     column(cols, 0),
			Username: column(cols, 4),
			Password: column(cols, 5),
		})
	}
	return creds, nil
}

func (c *Client) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return "", ErrFetchTimeout
		}
		return "", fmt.Errorf("directory fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("directory fetch failed: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("directory fetch failed: %w", err)
	}
	return string(data), nil
}

// parseRows splits the CSV text into trimmed column slices, dropping the
// header row, blank rows, and rows whose name column is empty.
func parseRows(csvText string) [][]string {
	lines := strings.Split(csvText, "\n")
	if len(lines) <= 1 {
		return nil
	}

	var rows [][]string
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		cols := strings.Split(line, ",")
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}
		if cols[0] == "" {
			continue
		}
		rows = append(rows, cols)
	}
	return rows
}

func column(cols []string, i int) string {
	if i >= len(cols) {
		return ""
	}
	return cols[i]
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
