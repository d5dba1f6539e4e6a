// Package download fetches recording files to their on-disk destinations.
package download

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/np-at/zoomdl/internal/zoomapi"
)

// copyBufSize is the chunk size for streaming response bodies to disk,
// keeping memory bounded regardless of file size.
const copyBufSize = 128 * 1024

// Filename builds the destination file name for one recording file:
//
//	2023.03.05 - 02.30 PM UTC - Team&Sync.mp4
//
// Path separators in the topic are substituted so a topic can never introduce
// extra directories, and the extension is the lowercased file type.
func Filename(topic string, start time.Time, fileType string) string {
	t := start.UTC()
	return fmt.Sprintf("%s - %s UTC - %s.%s",
		t.Format("2006.01.02"),
		t.Format("03.04 PM"),
		sanitizeTopic(topic),
		strings.ToLower(fileType))
}

func sanitizeTopic(topic string) string {
	return strings.NewReplacer("/", "&", "\\", "&").Replace(topic)
}

// Engine streams recording files into {root}/{email}/{filename}.
type Engine struct {
	api  *zoomapi.Client
	root string
	log  zerolog.Logger
}

// NewEngine returns an Engine writing under root.
func NewEngine(api *zoomapi.Client, root string, log zerolog.Logger) *Engine {
	return &Engine{api: api, root: root, log: log}
}

// Fetch ensures one recording file exists on disk and reports whether it does.
//
// A destination that already exists counts as success without touching the
// network, which is what makes interrupted runs safe to repeat. A transport
// failure (non-OK status or connection error) is returned as an error and
// aborts the caller; a local write failure is logged and reported as false so
// the run can continue.
func (e *Engine) Fetch(ctx context.Context, email string, rec zoomapi.Recording, file zoomapi.RecordingFile) (bool, error) {
	name := Filename(rec.Topic, rec.StartTime, file.FileType)
	dir := filepath.Join(e.root, email)
	dest := filepath.Join(dir, name)

	if _, err := os.Stat(dest); err == nil {
		e.log.Info().Str("file", name).Str("account", email).Msg("already exists, skipping")
		return true, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("create download dir %s: %w", dir, err)
	}

	body, err := e.api.StreamFile(ctx, file.DownloadURL)
	if err != nil {
		return false, err
	}
	defer func() { _ = body.Close() }()

	if err := writeFile(dest, body); err != nil {
		e.log.Error().Err(err).Str("file", dest).Msg("failed to write download")
		return false, nil
	}
	return true, nil
}

func writeFile(dest string, body io.Reader) error {
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	buf := make([]byte, copyBufSize)
	if _, err := io.CopyBuffer(out, body, buf); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
