package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/flipset/flipset"
)

// Format selects the document encoding.
type Format string

const (
	// JSON is the default encoding.
	JSON Format = "json"
	// YAML encodes the same document with yaml.v3.
	YAML Format = "yaml"
)

// indent is shared by both encoders.
const indent = 4

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case JSON, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Options controls Write.
type Options struct {
	Format   Format
	Detailed bool
}

// year is one document entry; "tie" precedes "win" as in the archive's
// published results. Detail fields stay empty unless requested.
type year struct {
	Winner      string    `json:"winner,omitempty" yaml:"winner,omitempty"`
	TotalWeight int       `json:"total_weight,omitempty" yaml:"total_weight,omitempty"`
	Tie         *[]string `json:"tie,omitempty" yaml:"tie,omitempty"`
	TieVotes    *int      `json:"tie_votes,omitempty" yaml:"tie_votes,omitempty"`
	Win         []string  `json:"win" yaml:"win"`
	WinVotes    *int      `json:"win_votes,omitempty" yaml:"win_votes,omitempty"`
}

// build converts results into the document Write encodes. Keys are decimal
// years; both encoders emit them in ascending order.
func build(results []flipset.YearResult, detailed bool) map[string]year {
	doc := make(map[string]year, len(results))
	for _, r := range results {
		y := year{Win: nonNil(r.Win.Units)}
		if r.Tie != nil {
			tie := nonNil(r.Tie.Units)
			y.Tie = &tie
		}
		if detailed {
			y.Winner = r.Winner.String()
			y.TotalWeight = r.TotalWeight
			y.WinVotes = intPtr(r.Win.Votes)
			if r.Tie != nil {
				y.TieVotes = intPtr(r.Tie.Votes)
			}
		}
		doc[strconv.Itoa(r.Year)] = y
	}

	return doc
}

// Write encodes results to w. An empty Format means JSON.
func Write(w io.Writer, results []flipset.YearResult, opts Options) error {
	doc := build(results, opts.Detailed)

	switch opts.Format {
	case JSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", strings.Repeat(" ", indent))
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(indent)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	return nil
}

func nonNil(codes []string) []string {
	if codes == nil {
		return []string{}
	}

	return codes
}

func intPtr(v int) *int { return &v }
