package calendar

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestMockMeetingIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z]{4}-[a-z]{4}-[a-z]{4}$`)
	for i := 0; i < 50; i++ {
		id := mockMeetingID()
		if !pattern.MatchString(id) {
			t.Fatalf("mockMeetingID() = %q, want three hyphen-joined groups of four lowercase letters", id)
		}
	}
}

func TestGenerateMeetLinkUnconfigured(t *testing.T) {
	client := NewClient(Config{}, zerolog.Nop())

	if client.Configured() {
		t.Fatal("client with empty config reports Configured() = true")
	}

	link, err := client.GenerateMeetLink(context.Background(), MeetingRequest{
		StudentName: "Test Student",
		Email:       "test@example.com",
		MeetingTime: time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("GenerateMeetLink() error = %v, want nil in mock mode", err)
	}

	pattern := regexp.MustCompile(`^https://meet\.google\.com/[a-z]{4}-[a-z]{4}-[a-z]{4}$`)
	if !pattern.MatchString(link) {
		t.Errorf("GenerateMeetLink() = %q, want a mock meet link", link)
	}
}

func TestConfigured(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   bool
	}{
		{
			name:   "all credentials present",
			config: Config{ClientID: "id", ClientSecret: "secret", RefreshToken: "refresh"},
			want:   true,
		},
		{
			name:   "missing refresh token",
			config: Config{ClientID: "id", ClientSecret: "secret"},
			want:   false,
		},
		{
			name:   "empty config",
			config: Config{},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.config, zerolog.Nop())
			if got := client.Configured(); got != tt.want {
				t.Errorf("Configured() = %v, want %v", got, tt.want)
			}
		})
	}
}
