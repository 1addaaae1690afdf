package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestParse_Text(t *testing.T) {
	out, err := execute(t, "", "parse", "--now", "2025-06-10T09:00:00Z", "Meeting", "at", "Central", "Park", "next", "Friday")
	require.NoError(t, err)

	want := "Meeting\n" +
		"  intent: event\n" +
		"  date: 2025-06-13\n" +
		"  location: Central Park\n" +
		"  confidence: 80%\n"
	assert.Equal(t, want, out)
}

func TestParse_JSON(t *testing.T) {
	out, err := execute(t, "", "parse", "--now", "2025-06-10T09:00:00Z", "-o", "json", "Lunch with Sam tomorrow")
	require.NoError(t, err)

	var got record
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, record{
		Text:       "Lunch with Sam tomorrow",
		Intent:     "event",
		Date:       "2025-06-11",
		Title:      "Lunch with Sam",
		Confidence: 0.7,
	}, got)
}

func TestParse_YAMLFromStdin(t *testing.T) {
	stdin := "Lunch with Sam tomorrow\n\n   \nBuy groceries\n"
	out, err := execute(t, stdin, "parse", "--now", "2025-06-10", "--output", "yaml")
	require.NoError(t, err)

	dec := yaml.NewDecoder(strings.NewReader(out))
	var got []record
	for {
		var r record
		if err := dec.Decode(&r); err != nil {
			require.True(t, errors.Is(err, io.EOF), "decode: %v", err)
			break
		}
		got = append(got, r)
	}

	require.Len(t, got, 2)
	assert.Equal(t, "2025-06-11", got[0].Date)
	assert.Equal(t, "Buy groceries", got[1].Title)
	assert.Equal(t, "task", got[1].Intent)
	assert.Empty(t, got[1].Date)
	assert.InDelta(t, 0.4, got[1].Confidence, 1e-9)
}

func TestParse_Timezone(t *testing.T) {
	// 20:00 UTC on Jun 10 is already Jun 11 in Tokyo.
	out, err := execute(t, "", "parse", "--now", "2025-06-10T20:00:00Z", "--timezone", "Asia/Tokyo", "-o", "json", "Dinner tomorrow")
	require.NoError(t, err)

	var got record
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "2025-06-12", got.Date)
}

func TestParse_Empty(t *testing.T) {
	out, err := execute(t, "", "parse", "-o", "json", "")
	require.NoError(t, err)

	var got record
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "unknown", got.Intent)
	assert.Empty(t, got.Title)
	assert.Zero(t, got.Confidence)
}

func TestParse_BadFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "output", args: []string{"parse", "-o", "xml", "x"}, wantErr: "unknown --output"},
		{name: "timezone", args: []string{"parse", "-z", "Mars/Olympus", "x"}, wantErr: "invalid --timezone"},
		{name: "now", args: []string{"parse", "--now", "yesterday-ish", "x"}, wantErr: "invalid --now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
