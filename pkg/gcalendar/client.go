package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	defaultCalendarID = "primary"
	dayLayout         = "2006-01-02"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file.
// tokenPath is only read for OAuth desktop credentials.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials JSON.
// Service account keys are tried first, then OAuth installed-app credentials
// paired with a token previously saved at tokenPath.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	oauthConfig, cfgErr := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if cfgErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tok, err := LoadToken(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("google credentials are OAuth desktop type but no usable token: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", err)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// LoadToken reads an OAuth token saved by the gcal-auth script.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token %s: %w", path, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("parse token %s: %w", path, err)
	}
	return &tok, nil
}

// SaveToken writes tok to path with owner-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write token %s: %w", path, err)
	}
	return nil
}

// CreateEvent creates a new Google Calendar event. All-day events use the
// date part of StartTime and end on the following day.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
	}

	if req.AllDay {
		event.Start = &calendar.EventDateTime{Date: req.StartTime.Format(dayLayout)}
		event.End = &calendar.EventDateTime{Date: req.StartTime.AddDate(0, 0, 1).Format(dayLayout)}
	} else {
		event.Start = &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		}
		event.End = &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		}
	}

	created, err := c.service.Events.Insert(calendarIDOrDefault(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    created.Location,
	}, nil
}

// DeleteEvent removes an event previously created with CreateEvent.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if err := c.service.Events.Delete(calendarIDOrDefault(calendarID), eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event %s: %w", eventID, err)
	}
	return nil
}

func calendarIDOrDefault(id string) string {
	if id == "" {
		return defaultCalendarID
	}
	return id
}
