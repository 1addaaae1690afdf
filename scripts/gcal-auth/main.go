// Command gcal-auth authorizes Google Calendar access once and saves the
// OAuth token the API server reads from google_calendar.token_path.
//
// Usage:
//
//	go run ./scripts/gcal-auth [credentials.json] [token.json]
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"task-capture/pkg/gcalendar"
)

func main() {
	credsPath, tokenPath := "google-credentials.json", "token.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		tokenPath = os.Args[2]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	authURL := config.AuthCodeURL("task-capture", oauth2.AccessTypeOffline)
	fmt.Println("Step 1: open this URL and sign in with the Google account that owns the calendar:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("Step 2: paste the authorization code here and press Enter: ")

	code, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), strings.TrimSpace(code))
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
		log.Fatalf("Failed to save token: %v", err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s. Restart the API to enable the calendar push.\n", tokenPath)
}
