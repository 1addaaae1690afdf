package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"task-capture/pkg/datemath"
	"task-capture/pkg/nlparser"
)

// record is the printable form of a parse result.
type record struct {
	Text       string  `json:"text" yaml:"text"`
	Intent     string  `json:"intent" yaml:"intent"`
	Date       string  `json:"date,omitempty" yaml:"date,omitempty"`
	Time       string  `json:"time,omitempty" yaml:"time,omitempty"`
	Location   string  `json:"location,omitempty" yaml:"location,omitempty"`
	Title      string  `json:"title" yaml:"title"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

func newRecord(p nlparser.ParsedInput) record {
	r := record{
		Text:       p.OriginalText,
		Intent:     p.Intent.String(),
		Title:      p.Title,
		Confidence: p.Confidence,
	}
	if p.Date != nil {
		r.Date = p.Date.Format(datemath.DayLayout)
	}
	if p.Time != nil {
		r.Time = *p.Time
	}
	if p.Location != nil {
		r.Location = *p.Location
	}
	return r
}

type writer interface {
	write(p nlparser.ParsedInput) error
	close() error
}

func newWriter(format string, out io.Writer) (writer, error) {
	switch format {
	case outputJSON:
		return jsonWriter{enc: json.NewEncoder(out)}, nil
	case outputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		return yamlWriter{enc: enc}, nil
	case outputText:
		return textWriter{out: out}, nil
	default:
		return nil, fmt.Errorf("unknown --output %q: want json, yaml or text", format)
	}
}

// jsonWriter emits one JSON object per line.
type jsonWriter struct{ enc *json.Encoder }

func (w jsonWriter) write(p nlparser.ParsedInput) error { return w.enc.Encode(newRecord(p)) }
func (w jsonWriter) close() error                       { return nil }

// yamlWriter emits one YAML document per line.
type yamlWriter struct{ enc *yaml.Encoder }

func (w yamlWriter) write(p nlparser.ParsedInput) error { return w.enc.Encode(newRecord(p)) }
func (w yamlWriter) close() error                       { return w.enc.Close() }

type textWriter struct{ out io.Writer }

func (w textWriter) write(p nlparser.ParsedInput) error {
	r := newRecord(p)
	if _, err := fmt.Fprintf(w.out, "%s\n  intent: %s\n", r.Title, r.Intent); err != nil {
		return err
	}
	for _, field := range [][2]string{{"date", r.Date}, {"time", r.Time}, {"location", r.Location}} {
		if field[1] == "" {
			continue
		}
		if _, err := fmt.Fprintf(w.out, "  %s: %s\n", field[0], field[1]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w.out, "  confidence: %d%%\n", nlparser.ConfidencePercent(r.Confidence))
	return err
}

func (w textWriter) close() error { return nil }
