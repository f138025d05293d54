package loader

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/modelspec/pkg/kind"
	"github.com/leapstack-labs/modelspec/pkg/sqlast"
)

// Model is a discovered SQL model file with its resolved kind.
type Model struct {
	Name   string
	Path   string // file path relative to the models directory
	SQL    string
	Kind   kind.Kind
	Config *FrontmatterConfig
}

// Loader discovers model files under a models directory.
type Loader struct {
	modelsDir   string
	defaultKind kind.Kind
	logger      *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithDefaultKind sets the kind used by models that declare none.
func WithDefaultKind(k kind.Kind) Option {
	return func(l *Loader) { l.defaultKind = k }
}

// WithLogger sets the loader's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// New creates a Loader for the given models directory.
func New(modelsDir string, opts ...Option) *Loader {
	l := &Loader{
		modelsDir: modelsDir,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Problem pairs a model file with its load error.
type Problem struct {
	Path string
	Err  error
}

// Load walks the models directory and parses every .sql file, failing on
// the first invalid model.
func (l *Loader) Load() ([]*Model, error) {
	models, problems, err := l.walk()
	if err != nil {
		return nil, err
	}
	if len(problems) > 0 {
		return nil, problems[0].Err
	}
	return models, nil
}

// LoadLenient walks the models directory and collects every invalid model
// instead of failing on the first.
func (l *Loader) LoadLenient() ([]*Model, []Problem, error) {
	return l.walk()
}

func (l *Loader) walk() ([]*Model, []Problem, error) {
	var models []*Model
	var problems []Problem

	err := filepath.WalkDir(l.modelsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".sql") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		rel, err := filepath.Rel(l.modelsDir, path)
		if err != nil {
			rel = path
		}

		model, err := l.parseModel(rel, string(content))
		if err != nil {
			problems = append(problems, Problem{Path: rel, Err: err})
			return nil
		}

		l.logger.Debug("loaded model", "name", model.Name, "kind", model.Kind.Name())
		models = append(models, model)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return models, problems, nil
}

// parseModel extracts frontmatter and resolves the model's kind.
func (l *Loader) parseModel(relPath, content string) (*Model, error) {
	result, err := ExtractFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", relPath, err)
	}

	cfg := result.Config
	cfg.ApplyDefaults(filepath.Base(relPath), filepath.Dir(relPath))

	k, err := ResolveKind(cfg.Kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", relPath, err)
	}
	if k == nil {
		k = l.defaultKind
	}
	if k == nil {
		k = kind.NewView(false)
	}

	return &Model{
		Name:   cfg.Name,
		Path:   relPath,
		SQL:    result.SQL,
		Kind:   k,
		Config: cfg,
	}, nil
}

// ResolveKind classifies a frontmatter kind value. Strings containing a
// property list are parsed as KIND expressions first; everything else goes
// straight to the classifier.
func ResolveKind(v any) (kind.Kind, error) {
	if s, ok := v.(string); ok && strings.Contains(s, "(") {
		expr, err := sqlast.ParseKindExpr(s)
		if err != nil {
			return nil, err
		}
		return kind.Classify(kind.FromExpr(expr))
	}
	return kind.ClassifyValue(v)
}
