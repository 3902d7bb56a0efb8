package download

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Silica96/yt-dlp-tauri/internal/model"
)

// Default values for fields missing from metadata responses
const (
	DefaultEntryTitle    = "Unknown"
	DefaultPlaylistID    = "playlist"
	DefaultPlaylistTitle = "Playlist"
)

// JSON field names in yt-dlp metadata output
const (
	FieldType        = "_type"
	FieldID          = "id"
	FieldTitle       = "title"
	FieldDuration    = "duration"
	FieldThumbnail   = "thumbnail"
	FieldDescription = "description"
	FieldUploader    = "uploader"
	FieldEntries     = "entries"

	TypePlaylist = "playlist"
)

// parseMediaInfo classifies the JSON-lines stdout of a metadata query.
// Two or more lines form a playlist whose entries are the parseable lines;
// a single line is either a playlist reference (expanded in place) or one
// item. A single line that is not valid JSON is a hard error.
func parseMediaInfo(stdout string) (*model.MediaInfo, error) {
	lines := splitLines(stdout)
	if len(lines) == 0 {
		return nil, ErrNoOutput
	}

	if len(lines) > 1 {
		return parsePlaylistLines(lines), nil
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataParse, err)
	}

	if stringField(obj, FieldType) == TypePlaylist {
		return parsePlaylistReference(obj), nil
	}

	return &model.MediaInfo{
		ID:          stringField(obj, FieldID),
		Title:       stringFieldOr(obj, FieldTitle, DefaultEntryTitle),
		Duration:    floatField(obj, FieldDuration),
		Thumbnail:   stringField(obj, FieldThumbnail),
		Description: stringField(obj, FieldDescription),
		Uploader:    stringField(obj, FieldUploader),
		IsPlaylist:  false,
	}, nil
}

// parsePlaylistLines expands a multi-line response. Lines that fail to parse
// as JSON are skipped, not fatal.
func parsePlaylistLines(lines []string) *model.MediaInfo {
	entries := make([]model.PlaylistEntry, 0, len(lines))
	for _, line := range lines {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			continue
		}
		entries = append(entries, model.PlaylistEntry{
			ID:        stringField(obj, FieldID),
			Title:     stringFieldOr(obj, FieldTitle, DefaultEntryTitle),
			Duration:  floatField(obj, FieldDuration),
			Thumbnail: stringField(obj, FieldThumbnail),
		})
	}

	return &model.MediaInfo{
		ID:            DefaultPlaylistID,
		Title:         DefaultPlaylistTitle,
		IsPlaylist:    true,
		PlaylistCount: len(entries),
		Entries:       entries,
	}
}

// parsePlaylistReference expands the embedded entries array of a playlist
// reference object. Entries without an id are skipped.
func parsePlaylistReference(obj map[string]interface{}) *model.MediaInfo {
	var entries []model.PlaylistEntry

	if raw, ok := obj[FieldEntries].([]interface{}); ok {
		entries = make([]model.PlaylistEntry, 0, len(raw))
		for _, item := range raw {
			entry, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			id := stringField(entry, FieldID)
			if id == "" {
				continue
			}
			entries = append(entries, model.PlaylistEntry{
				ID:        id,
				Title:     stringFieldOr(entry, FieldTitle, DefaultEntryTitle),
				Duration:  floatField(entry, FieldDuration),
				Thumbnail: stringField(entry, FieldThumbnail),
			})
		}
	}

	return &model.MediaInfo{
		ID:            stringFieldOr(obj, FieldID, DefaultPlaylistID),
		Title:         stringFieldOr(obj, FieldTitle, DefaultPlaylistTitle),
		Thumbnail:     stringField(obj, FieldThumbnail),
		Uploader:      stringField(obj, FieldUploader),
		IsPlaylist:    true,
		PlaylistCount: len(entries),
		Entries:       entries,
	}
}

func splitLines(stdout string) []string {
	var lines []string
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func stringField(obj map[string]interface{}, key string) string {
	value, _ := obj[key].(string)
	return value
}

func stringFieldOr(obj map[string]interface{}, key, fallback string) string {
	if value, ok := obj[key].(string); ok && value != "" {
		return value
	}
	return fallback
}

func floatField(obj map[string]interface{}, key string) *float64 {
	if value, ok := obj[key].(float64); ok {
		return &value
	}
	return nil
}
