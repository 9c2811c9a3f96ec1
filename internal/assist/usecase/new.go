package usecase

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"smart-todo-assistant/pkg/dateparse"
	pkgLog "smart-todo-assistant/pkg/log"
	"smart-todo-assistant/pkg/llmprovider"
	"smart-todo-assistant/pkg/nlptext"
)

const defaultDescribeCacheSize = 256

// TextGenerator is the optional generative-description collaborator.
// A nil TextGenerator disables generation; the deterministic template
// fallback is used instead.
type TextGenerator interface {
	GenerateText(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// implUseCase is the private implementation of assist.UseCase.
type implUseCase struct {
	l      pkgLog.Logger
	dates  *dateparse.Extractor
	tagger nlptext.Tagger
	llm    TextGenerator

	describeCache *lru.Cache[string, string]
}

// New creates a new assist UseCase implementation.
func New(l pkgLog.Logger, dates *dateparse.Extractor, tagger nlptext.Tagger, llm TextGenerator, describeCacheSize int) *implUseCase {
	if describeCacheSize <= 0 {
		describeCacheSize = defaultDescribeCacheSize
	}
	cache, _ := lru.New[string, string](describeCacheSize)

	return &implUseCase{
		l:             l,
		dates:         dates,
		tagger:        tagger,
		llm:           llm,
		describeCache: cache,
	}
}
