package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate fills safe defaults, tidies the board list, and
// reports anything that should stop a save (Errors) or merely deserves
// a log line (Warnings).
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	if out.Server.Port == 0 {
		out.Server.Port = DefaultPort
	}
	if out.Server.Port < 1 || out.Server.Port > 65535 {
		res.addErr("server.port must be 1..65535, got %d", out.Server.Port)
	}

	if out.Scrape.TimeoutSeconds == 0 {
		out.Scrape.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if out.Scrape.TimeoutSeconds < 0 {
		res.addErr("scrape.timeout_seconds must be > 0, got %d", out.Scrape.TimeoutSeconds)
	} else if out.Scrape.TimeoutSeconds < 2 {
		res.addWarn("scrape.timeout_seconds is very low (%d); live boards may not answer in time.", out.Scrape.TimeoutSeconds)
	} else if out.Scrape.TimeoutSeconds > 120 {
		res.addWarn("scrape.timeout_seconds is very high (%d); a dead board will stall searches.", out.Scrape.TimeoutSeconds)
	}

	out.Scrape.UserAgent = strings.TrimSpace(out.Scrape.UserAgent)
	if out.Scrape.UserAgent == "" {
		out.Scrape.UserAgent = DefaultUserAgent
	}

	out.Search.DefaultBoards = trimBoardLines(out.Search.DefaultBoards)
	if out.Search.DefaultBoards == "" {
		res.addWarn("search.default_boards is empty; searches without boards will return nothing.")
	}

	return out, res
}

// trimBoardLines drops blank lines and per-line padding, deduplicating
// repeated lines case-insensitively.
func trimBoardLines(text string) string {
	seen := map[string]bool{}
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key := strings.ToLower(line)
		if seen[key] {
			continue
		}
		seen[key] = true
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
