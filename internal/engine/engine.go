// Package engine implements the classification pipeline: the deterministic
// rule cascade, the run-scoped domain cache, escalation to the external
// classification service, and reassembly of results in input order.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/munim/organize-bitwarden-folders-ai/internal/common"
	"github.com/munim/organize-bitwarden-folders-ai/internal/llm"
	"github.com/munim/organize-bitwarden-folders-ai/internal/model"
	"github.com/munim/organize-bitwarden-folders-ai/internal/netcheck"
)

// Options configures pipeline behavior.
type Options struct {
	Sleep        common.SleepFunc          // injected pause, nil means real sleep
	OnBatchDone  func(completed, total int) // progress callback, may be nil
	BatchSize    int                       // items per service request
	ProbeWorkers int                       // concurrent reachability checks per batch
	BatchPause   time.Duration             // pause between service batches
}

// DefaultOptions returns the pipeline defaults.
func DefaultOptions() Options {
	return Options{
		BatchSize:    10,
		ProbeWorkers: 4,
		BatchPause:   5 * time.Second,
	}
}

// Engine drives the batch classification run.
type Engine struct {
	rules      *RuleClassifier
	classifier BatchClassifier
	opts       Options
}

// New creates an Engine. Zero-valued options fall back to defaults.
func New(rules *RuleClassifier, classifier BatchClassifier, opts Options) *Engine {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 10
	}
	if opts.ProbeWorkers <= 0 {
		opts.ProbeWorkers = 4
	}
	if opts.BatchPause < 0 {
		opts.BatchPause = 0
	}
	if opts.Sleep == nil {
		opts.Sleep = common.Sleep
	}
	return &Engine{rules: rules, classifier: classifier, opts: opts}
}

// Run classifies every item and returns exactly one result per item, in
// input order. Batches are processed sequentially; the domain cache is
// created here, threaded through every batch, and discarded when Run
// returns. On cancellation the results of fully processed batches are
// returned alongside the context error.
func (e *Engine) Run(ctx context.Context, items []model.Item) ([]model.Result, error) {
	if len(items) == 0 {
		return nil, common.ErrNoItems
	}

	cache := NewDomainCache()
	batches := splitBatches(items, e.opts.BatchSize)

	slog.Info("Starting classification run",
		"items", len(items),
		"batches", len(batches),
		"batch_size", e.opts.BatchSize)

	results := make([]model.Result, 0, len(items))
	for i, batch := range batches {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		batchResults, err := e.processBatch(ctx, cache, batch)
		if err != nil {
			return results, err
		}
		results = append(results, batchResults...)

		if e.opts.OnBatchDone != nil {
			e.opts.OnBatchDone(i+1, len(batches))
		}

		if i < len(batches)-1 && e.opts.BatchPause > 0 {
			if err := e.opts.Sleep(ctx, e.opts.BatchPause); err != nil {
				return results, err
			}
		}
	}

	slog.Info("Classification run complete",
		"results", len(results),
		"cached_domains", cache.Len())

	return results, nil
}

// batchSlot tracks how one item of a batch got resolved.
type batchSlot struct {
	rule     *model.Result
	cached   *model.Result
	escIndex int // position in the escalated set, -1 if not escalated
}

// processBatch runs one batch end to end: rule cascade, cache lookup,
// service call for the remainder, cache update, reassembly.
func (e *Engine) processBatch(ctx context.Context, cache *DomainCache, batch []model.Item) ([]model.Result, error) {
	slots := make([]batchSlot, len(batch))

	ruleResults := e.evaluateRulesParallel(ctx, batch)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Cache lookup and escalation happen in batch order so the escalated
	// set keeps the items' relative order; the service response is matched
	// back positionally.
	var escItems []llm.BatchItem
	var escDomains []string
	for i := range batch {
		item := &batch[i]
		slots[i].escIndex = -1

		if ruleResults[i] != nil {
			slots[i].rule = ruleResults[i]
			continue
		}

		domain := netcheck.ExtractDomain(item.WebURIs(), item.Username)
		if domain != "" {
			if entry, ok := cache.Get(domain); ok {
				r := entry.Result(item)
				slots[i].cached = &r
				continue
			}
		}

		slots[i].escIndex = len(escItems)
		escItems = append(escItems, llm.BatchItem{
			ID:       item.ID,
			Name:     item.Name,
			URL:      item.JoinedURIs(),
			Username: item.Username,
			Type:     item.Type,
			Folder:   item.Folder,
		})
		escDomains = append(escDomains, domain)
	}

	var aiResults []model.Result
	if len(escItems) > 0 {
		var err error
		aiResults, err = e.classifier.ClassifyBatch(ctx, escItems)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			// Escalated items in this batch fall through to Uncategorized.
			slog.Warn("Batch classification failed, continuing without service results",
				"escalated", len(escItems),
				"error", err)
			aiResults = nil
		}
		e.applyToCache(cache, aiResults, escDomains)
	}

	return assemble(batch, slots, aiResults), nil
}

// applyToCache records service results under their source domains before the
// next batch starts. The first result per domain in a response wins; later
// batches may overwrite.
func (e *Engine) applyToCache(cache *DomainCache, aiResults []model.Result, escDomains []string) {
	seen := make(map[string]struct{})
	for i, res := range aiResults {
		if i >= len(escDomains) {
			break
		}
		domain := escDomains[i]
		if domain == "" {
			continue
		}
		if _, dup := seen[domain]; dup {
			continue
		}
		seen[domain] = struct{}{}
		cache.Set(domain, CacheEntry{
			Category:   res.Category,
			Confidence: res.Confidence,
			Reason:     res.Reason,
		})
	}
}

// assemble produces one result per batch item, in batch order. Escalated
// items consume their positional service result; when the service returned
// fewer entries than requested the rest are Uncategorized. The id and name
// of service results are always overwritten from the source item in case
// the service altered them.
func assemble(batch []model.Item, slots []batchSlot, aiResults []model.Result) []model.Result {
	out := make([]model.Result, 0, len(batch))
	for i := range batch {
		item := &batch[i]
		switch {
		case slots[i].rule != nil:
			out = append(out, *slots[i].rule)
		case slots[i].cached != nil:
			out = append(out, *slots[i].cached)
		case slots[i].escIndex >= 0 && slots[i].escIndex < len(aiResults):
			res := aiResults[slots[i].escIndex]
			res.ID = item.ID
			res.Name = item.Name
			out = append(out, res)
		default:
			out = append(out, model.Uncategorized(item))
		}
	}
	return out
}

// evaluateRulesParallel runs the rule cascade for a batch's items with
// bounded concurrency. URIs within a single item stay sequential; only
// items are independent of each other.
func (e *Engine) evaluateRulesParallel(ctx context.Context, batch []model.Item) []*model.Result {
	results := make([]*model.Result, len(batch))

	workChan := make(chan int, len(batch))
	for i := range batch {
		workChan <- i
	}
	close(workChan)

	workers := e.opts.ProbeWorkers
	if workers > len(batch) {
		workers = len(batch)
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range workChan {
				results[i] = e.rules.Evaluate(ctx, &batch[i])
			}
		}()
	}
	wg.Wait()

	return results
}

// splitBatches chunks items preserving order.
func splitBatches(items []model.Item, size int) [][]model.Item {
	batches := make([][]model.Item, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}
	return batches
}

// Summary aggregates how a run's results were produced.
type Summary struct {
	Total         int
	MappedFolder  int
	MappedDomain  int
	Homelab       int
	Dead          int
	Uncategorized int
	Classified    int
}

// Summarize tallies results by reason for the run report.
func Summarize(results []model.Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Reason {
		case model.ReasonMappedFolder:
			s.MappedFolder++
		case model.ReasonMappedDomain:
			s.MappedDomain++
		case model.ReasonPrivateIP:
			s.Homelab++
		case model.ReasonUnreachable:
			s.Dead++
		case model.ReasonUncategorized:
			s.Uncategorized++
		default:
			s.Classified++
		}
	}
	return s
}

// String renders the summary for logs.
func (s Summary) String() string {
	return fmt.Sprintf("total=%d classified=%d mapped_folder=%d mapped_domain=%d homelab=%d dead=%d uncategorized=%d",
		s.Total, s.Classified, s.MappedFolder, s.MappedDomain, s.Homelab, s.Dead, s.Uncategorized)
}
