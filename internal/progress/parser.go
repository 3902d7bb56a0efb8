package progress

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Silica96/yt-dlp-tauri/internal/model"
)

// Output markers emitted by yt-dlp
const (
	ExtractorPrefixYouTube = "[youtube]"
	ExtractorPrefixInfo    = "[info]"
	ExtractingMarker       = "Extracting"
	DestinationMarker      = "[download] Destination:"
	MergerMarker           = "[Merger]"
	ExtractAudioMarker     = "[ExtractAudio]"
)

// progressPattern matches "[download]  42.5% of ~12.3MiB at 1.2MiB/s ETA 00:10".
// The size, speed and ETA groups are all optional in practice.
var progressPattern = regexp.MustCompile(
	`\[download\]\s+(\d+\.?\d*)%\s+of\s+~?\s*([\d.]+\w+)(?:\s+at\s+([\d.]+\w+/s))?(?:\s+ETA\s+(\S+))?`,
)

// rule pairs a line predicate with an event extractor. Rules are evaluated
// in order and the first match wins.
type rule struct {
	match   func(line string) bool
	extract func(line string) model.ProgressEvent
}

// rules is deliberately an open list: upstream output changes across
// versions, and individual rules can be added or dropped without touching
// the classifier.
var rules = []rule{
	{
		match: func(line string) bool {
			return strings.HasPrefix(line, ExtractorPrefixYouTube) ||
				strings.HasPrefix(line, ExtractorPrefixInfo) ||
				strings.Contains(line, ExtractingMarker)
		},
		extract: func(string) model.ProgressEvent {
			return model.ProgressEvent{
				Status:     model.StatusExtracting,
				Percentage: model.Float64(0),
			}
		},
	},
	{
		match: func(line string) bool {
			return progressPattern.MatchString(line)
		},
		extract: extractDownloading,
	},
	{
		match: func(line string) bool {
			return strings.Contains(line, DestinationMarker)
		},
		extract: func(line string) model.ProgressEvent {
			filename := strings.TrimSpace(strings.Replace(line, DestinationMarker, "", 1))
			return model.ProgressEvent{
				Status:     model.StatusStarting,
				Percentage: model.Float64(0),
				Filename:   filename,
			}
		},
	},
	{
		match: func(line string) bool {
			return strings.Contains(line, MergerMarker) ||
				strings.Contains(line, ExtractAudioMarker)
		},
		extract: func(string) model.ProgressEvent {
			return model.ProgressEvent{
				Status:     model.StatusProcessing,
				Percentage: model.Float64(100),
			}
		},
	},
}

// Classify turns one output line into zero-or-one progress event. It is
// total: unrecognized lines return nil and are never an error.
func Classify(line string) *model.ProgressEvent {
	for _, r := range rules {
		if r.match(line) {
			event := r.extract(line)
			return &event
		}
	}
	return nil
}

func extractDownloading(line string) model.ProgressEvent {
	event := model.ProgressEvent{Status: model.StatusDownloading}

	caps := progressPattern.FindStringSubmatch(line)
	if caps == nil {
		return event
	}

	// A malformed numeral leaves the percentage absent rather than
	// discarding the line.
	if value, err := strconv.ParseFloat(caps[1], 64); err == nil {
		event.Percentage = &value
	}
	if caps[3] != "" {
		event.Speed = caps[3]
	}
	if caps[4] != "" {
		event.ETA = caps[4]
	}

	return event
}
