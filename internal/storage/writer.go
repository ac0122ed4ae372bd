package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/venturecast/venturecast/internal/types"
)

// Writer persists generated artifacts (audio, script, aggregate
// document) into an output directory with descriptive timestamped
// filenames. This is the only on-disk state the tool owns.
type Writer struct {
	dir    string
	logger *slog.Logger
}

// NewWriter creates a Writer, creating the output directory if needed.
func NewWriter(dir string, logger *slog.Logger) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &types.StorageError{Path: dir, Err: err}
	}
	return &Writer{
		dir:    dir,
		logger: logger.With("component", "storage"),
	}, nil
}

// SaveAudio writes podcast audio as an .mp3 and returns its path.
func (w *Writer) SaveAudio(audio []byte, topic string, now time.Time) (string, error) {
	if len(audio) == 0 {
		return "", &types.StorageError{Path: w.dir, Err: fmt.Errorf("cannot save empty audio data")}
	}
	return w.save(audio, topic, now, "mp3")
}

// SaveScript writes the narration script as a .txt sidecar.
func (w *Writer) SaveScript(script, topic string, now time.Time) (string, error) {
	return w.save([]byte(script), topic, now, "txt")
}

// SaveDocument writes the aggregate document as a .md sidecar.
func (w *Writer) SaveDocument(document, topic string, now time.Time) (string, error) {
	return w.save([]byte(document), topic, now, "md")
}

func (w *Writer) save(data []byte, topic string, now time.Time, ext string) (string, error) {
	name := Filename(topic, now, ext)
	path, err := uncollide(filepath.Join(w.dir, name))
	if err != nil {
		return "", &types.StorageError{Path: path, Err: err}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &types.StorageError{Path: path, Err: err}
	}

	w.logger.Info("artifact saved", "path", path, "bytes", len(data))
	return path, nil
}

// Filename builds a descriptive output name, e.g.
// "vc_podcast_20260104_1430_artificial_intelligence.mp3".
func Filename(topic string, now time.Time, ext string) string {
	return fmt.Sprintf("vc_podcast_%s_%s.%s", now.Format("20060102_1504"), slug(topic), ext)
}

// slug reduces a topic to lowercase alphanumerics joined by single
// underscores, capped at 30 characters.
func slug(topic string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(topic) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}

	s := b.String()
	if len(s) > 30 {
		s = s[:30]
	}
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	s = strings.Trim(s, "_")
	if s == "" {
		s = "general"
	}
	return s
}

// uncollide appends a counter when the target filename already exists.
func uncollide(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for counter := 2; counter <= 1000; counter++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, counter, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("too many filename collisions")
}
