package roster

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"workstatus-engine/internal/model"
)

// FileSource reads the roster from a YAML or JSON document of the form
// {members: [...]}. The file is re-read on every call.
type FileSource struct {
	path   string
	logger zerolog.Logger
}

func NewFileSource(path string, logger zerolog.Logger) *FileSource {
	return &FileSource{
		path:   path,
		logger: logger.With().Str("component", "roster_file").Logger(),
	}
}

func (s *FileSource) Members(ctx context.Context) ([]model.Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", s.path, ErrUnavailable)
	}

	var doc document
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".json":
		err = json.Unmarshal(raw, &doc)
	default:
		err = yaml.Unmarshal(raw, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding roster %s: %w", s.path, err)
	}

	return sanitize(doc.Members, s.logger), nil
}
