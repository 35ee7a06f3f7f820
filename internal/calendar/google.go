package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	defaultBaseURL  = "https://www.googleapis.com/calendar/v3"
	defaultTokenURL = "https://oauth2.googleapis.com/token"
)

var ErrNotConfigured = errors.New("google calendar credentials not configured")

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	CalendarID   string
	Timezone     string
	// BaseURL and TokenURL are overridable for tests.
	BaseURL  string
	TokenURL string
}

// GoogleClient implements Client against the Google Calendar REST API using a
// refresh-token grant. Without credentials it runs disabled: busy queries
// return nothing and event creation fails, which downgrades bookings to
// PENDING instead of blocking them.
type GoogleClient struct {
	httpClient *http.Client
	cfg        GoogleConfig
	enabled    bool

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewGoogleClient(cfg GoogleConfig) *GoogleClient {
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = defaultTokenURL
	}

	enabled := cfg.ClientID != "" && cfg.ClientSecret != "" && cfg.RefreshToken != ""
	if !enabled {
		log.Println("[calendar] google credentials not configured, calendar features disabled")
	}

	return &GoogleClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cfg:        cfg,
		enabled:    enabled,
	}
}

func (g *GoogleClient) GetBusySlots(ctx context.Context, start, end time.Time) ([]BusyInterval, error) {
	if !g.enabled {
		return nil, nil
	}

	reqBody := map[string]any{
		"timeMin": start.Format(time.RFC3339),
		"timeMax": end.Format(time.RFC3339),
		"items":   []map[string]string{{"id": g.cfg.CalendarID}},
	}

	var resp struct {
		Calendars map[string]struct {
			Busy []struct {
				Start time.Time `json:"start"`
				End   time.Time `json:"end"`
			} `json:"busy"`
		} `json:"calendars"`
	}

	if err := g.doJSON(ctx, http.MethodPost, g.cfg.BaseURL+"/freeBusy", reqBody, &resp); err != nil {
		return nil, fmt.Errorf("freebusy query: %w", err)
	}

	var intervals []BusyInterval
	for _, slot := range resp.Calendars[g.cfg.CalendarID].Busy {
		intervals = append(intervals, BusyInterval{Start: slot.Start, End: slot.End})
	}
	return intervals, nil
}

func (g *GoogleClient) CreateEvent(ctx context.Context, event Event) (string, error) {
	if !g.enabled {
		return "", ErrNotConfigured
	}

	body := map[string]any{
		"summary":     event.Summary,
		"description": event.Description,
		"start": map[string]string{
			"dateTime": event.Start.Format(time.RFC3339),
			"timeZone": g.cfg.Timezone,
		},
		"end": map[string]string{
			"dateTime": event.End.Format(time.RFC3339),
			"timeZone": g.cfg.Timezone,
		},
	}
	if event.AttendeeEmail != "" {
		body["attendees"] = []map[string]string{
			{"email": event.AttendeeEmail, "displayName": event.AttendeeName},
		}
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events?sendUpdates=all",
		g.cfg.BaseURL, url.PathEscape(g.cfg.CalendarID))

	var resp struct {
		ID string `json:"id"`
	}
	if err := g.doJSON(ctx, http.MethodPost, endpoint, body, &resp); err != nil {
		return "", fmt.Errorf("insert event: %w", err)
	}

	log.Printf("[calendar] event created: %s", resp.ID)
	return resp.ID, nil
}

func (g *GoogleClient) DeleteEvent(ctx context.Context, eventID string) error {
	if !g.enabled || eventID == "" {
		return nil
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s",
		g.cfg.BaseURL, url.PathEscape(g.cfg.CalendarID), url.PathEscape(eventID))

	if err := g.doJSON(ctx, http.MethodDelete, endpoint, nil, nil); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	log.Printf("[calendar] event deleted: %s", eventID)
	return nil
}

func (g *GoogleClient) doJSON(ctx context.Context, method, endpoint string, body, out any) error {
	token, err := g.token(ctx)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("google calendar %s %s: status %d: %s", method, endpoint, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// token returns a cached access token, refreshing it via the refresh-token
// grant when missing or about to expire.
func (g *GoogleClient) token(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.accessToken != "" && time.Now().Before(g.tokenExpiry.Add(-30*time.Second)) {
		return g.accessToken, nil
	}

	form := url.Values{
		"client_id":     {g.cfg.ClientID},
		"client_secret": {g.cfg.ClientSecret},
		"refresh_token": {g.cfg.RefreshToken},
		"grant_type":    {"refresh_token"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token refresh: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("token refresh: status %d: %s", resp.StatusCode, raw)
	}

	var tok struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("token refresh: %w", err)
	}

	g.accessToken = tok.AccessToken
	g.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	return g.accessToken, nil
}
