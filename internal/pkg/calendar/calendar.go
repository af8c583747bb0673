package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	tokenEndpoint   = "https://oauth2.googleapis.com/token"
	calendarBaseURL = "https://www.googleapis.com/calendar/v3"

	meetingDuration = 30 * time.Minute
	meetingTimeZone = "Asia/Kolkata"
)

// Config holds the Google Calendar OAuth2 credentials. When any of the
// three OAuth fields is empty the client runs in mock mode and synthesizes
// meeting links locally.
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	CalendarID   string
}

// MeetingRequest carries the booking details attached to the calendar event.
type MeetingRequest struct {
	StudentName      string
	Email            string
	MeetingTime      time.Time
	Percentile       float64
	Category         string
	BranchPreference string
}

// Client creates calendar events with conferencing links attached.
type Client struct {
	config Config
	http   *http.Client
	logger zerolog.Logger
}

// NewClient creates a calendar client.
func NewClient(config Config, logger zerolog.Logger) *Client {
	if config.CalendarID == "" {
		config.CalendarID = "primary"
	}
	return &Client{
		config: config,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

// Configured reports whether real OAuth2 credentials are available.
func (c *Client) Configured() bool {
	return c.config.ClientID != "" && c.config.ClientSecret != "" && c.config.RefreshToken != ""
}

// GenerateMeetLink reserves a conferencing link for the meeting. Without
// credentials a mock link is synthesized so the booking flow still works in
// development. A configured client that fails to obtain a link returns an
// error and the caller must reject the booking.
func (c *Client) GenerateMeetLink(ctx context.Context, req MeetingRequest) (string, error) {
	if !c.Configured() {
		c.logger.Info().Msg("Calendar API not configured, using mock meet link")
		return "https://meet.google.com/" + mockMeetingID(), nil
	}

	accessToken, err := c.refreshAccessToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to refresh calendar access token: %w", err)
	}

	link, err := c.insertEvent(ctx, accessToken, req)
	if err != nil {
		return "", err
	}
	if link == "" {
		return "", fmt.Errorf("calendar event created without a conferencing link")
	}
	return link, nil
}

// mockMeetingID builds a meet-style id: three groups of four lowercase
// letters joined by hyphens.
func mockMeetingID() string {
	const chars = "abcdefghijklmnopqrstuvwxyz"
	var b strings.Builder
	for i := 0; i < 3; i++ {
		if i > 0 {
			b.WriteByte('-')
		}
		for j := 0; j < 4; j++ {
			b.WriteByte(chars[rand.Intn(len(chars))])
		}
	}
	return b.String()
}

// refreshAccessToken exchanges the long-lived refresh token for a short-lived
// access token.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	form := url.Values{
		"client_id":     {c.config.ClientID},
		"client_secret": {c.config.ClientSecret},
		"refresh_token": {c.config.RefreshToken},
		"grant_type":    {"refresh_token"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token endpoint error %s: %s", resp.Status, string(body))
	}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access token")
	}
	return out.AccessToken, nil
}

type eventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type calendarEvent struct {
	Summary     string      `json:"summary"`
	Description string      `json:"description"`
	Start       eventTime   `json:"start"`
	End         eventTime   `json:"end"`
	Attendees   []attendee  `json:"attendees"`
	Conference  *conference `json:"conferenceData,omitempty"`
}

type attendee struct {
	Email string `json:"email"`
}

type conference struct {
	CreateRequest struct {
		RequestID   string `json:"requestId"`
		SolutionKey struct {
			Type string `json:"type"`
		} `json:"conferenceSolutionKey"`
	} `json:"createRequest"`
}

// insertEvent creates the calendar event and returns its conferencing link.
func (c *Client) insertEvent(ctx context.Context, accessToken string, req MeetingRequest) (string, error) {
	event := calendarEvent{
		Summary: fmt.Sprintf("Career Guidance Consultation - %s", req.StudentName),
		Description: fmt.Sprintf(
			"MHT CET admission guidance consultation\n\nStudent Details:\n- Name: %s\n- Percentile: %.2f\n- Category: %s\n- Branch Preference: %s",
			req.StudentName, req.Percentile, req.Category, req.BranchPreference,
		),
		Start: eventTime{
			DateTime: req.MeetingTime.Format(time.RFC3339),
			TimeZone: meetingTimeZone,
		},
		End: eventTime{
			DateTime: req.MeetingTime.Add(meetingDuration).Format(time.RFC3339),
			TimeZone: meetingTimeZone,
		},
		Attendees:  []attendee{{Email: req.Email}},
		Conference: &conference{},
	}
	event.Conference.CreateRequest.RequestID = "booking-" + uuid.New().String()
	event.Conference.CreateRequest.SolutionKey.Type = "hangoutsMeet"

	body, err := json.Marshal(event)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events?conferenceDataVersion=1",
		calendarBaseURL, url.PathEscape(c.config.CalendarID))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("calendar request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("calendar API error %s: %s", resp.Status, string(respBody))
	}

	var out struct {
		HangoutLink string `json:"hangoutLink"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode calendar response: %w", err)
	}
	return out.HangoutLink, nil
}
