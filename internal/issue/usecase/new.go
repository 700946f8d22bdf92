package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"civic-ai-orchestrator/internal/classifier"
	"civic-ai-orchestrator/internal/issue"
	"civic-ai-orchestrator/pkg/log"
)

// Config tunes the use case. Zero CacheSize disables the label cache.
type Config struct {
	MaxImageBytes int64
	MaxResults    int
	CacheSize     int
	CacheTTL      time.Duration
}

// cachedLabels is what the label cache stores per image digest.
type cachedLabels struct {
	labels   []classifier.Label
	provider string
}

// implUseCase is the private implementation of issue.UseCase.
type implUseCase struct {
	l          log.Logger
	rules      *classifier.RuleSet
	recognizer issue.Recognizer
	cache      *expirable.LRU[string, cachedLabels]
	cfg        Config
}

var _ issue.UseCase = (*implUseCase)(nil)

// New creates a new issue UseCase implementation. recognizer may be nil, in
// which case every image categorizes to the safe fallback.
func New(l log.Logger, rules *classifier.RuleSet, recognizer issue.Recognizer, cfg Config) *implUseCase {
	if rules == nil {
		panic("issue/usecase: rules are required")
	}

	uc := &implUseCase{
		l:          l,
		rules:      rules,
		recognizer: recognizer,
		cfg:        cfg,
	}
	if cfg.CacheSize > 0 {
		uc.cache = expirable.NewLRU[string, cachedLabels](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return uc
}

// Ready reports whether a recognizer is wired.
func (uc *implUseCase) Ready() bool {
	return uc.recognizer != nil
}
