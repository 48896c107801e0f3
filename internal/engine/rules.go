package engine

import (
	"context"

	"github.com/munim/organize-bitwarden-folders-ai/internal/mapping"
	"github.com/munim/organize-bitwarden-folders-ai/internal/model"
)

// RuleClassifier applies the deterministic cascade that runs before any
// external service is consulted. Rules short-circuit at the first match:
// folder mapping, domain mapping, private network, unreachable URIs.
type RuleClassifier struct {
	folderMap *mapping.FolderMap
	detector  PrivateDetector
	prober    Prober
}

// NewRuleClassifier creates a rule classifier. folderMap may be nil when no
// mapping file was supplied; the first two rules then never fire.
func NewRuleClassifier(folderMap *mapping.FolderMap, detector PrivateDetector, prober Prober) *RuleClassifier {
	return &RuleClassifier{
		folderMap: folderMap,
		detector:  detector,
		prober:    prober,
	}
}

// Evaluate runs the cascade for one item. It returns nil when no rule fires
// and the item must be escalated to the cache or the service.
func (r *RuleClassifier) Evaluate(ctx context.Context, item *model.Item) *model.Result {
	if result := r.evaluateMapping(item); result != nil {
		return result
	}
	return r.evaluateURIs(ctx, item)
}

// evaluateMapping covers the two static-map rules.
func (r *RuleClassifier) evaluateMapping(item *model.Item) *model.Result {
	if r.folderMap.HasFolder(item.Folder) {
		return &model.Result{
			ID:         item.ID,
			Name:       item.Name,
			Category:   item.Folder,
			Confidence: 100,
			Reason:     model.ReasonMappedFolder,
		}
	}

	if folder, ok := r.folderMap.MatchUsername(item.Username); ok {
		return &model.Result{
			ID:         item.ID,
			Name:       item.Name,
			Category:   folder,
			Confidence: 95,
			Reason:     model.ReasonMappedDomain,
		}
	}

	return nil
}

// evaluateURIs walks the item's web URIs in order. A private URI wins
// immediately; a reachable one ends the scan with no rule match. The scan
// never stops early on an unreachable URI since a later one may still
// answer. Only when every URI failed is the item declared dead. Items with
// no web URIs skip both rules.
func (r *RuleClassifier) evaluateURIs(ctx context.Context, item *model.Item) *model.Result {
	webURIs := item.WebURIs()
	if len(webURIs) == 0 {
		return nil
	}

	for _, uri := range webURIs {
		if ctx.Err() != nil {
			return nil
		}
		if r.detector.IsPrivateURI(uri) {
			return &model.Result{
				ID:         item.ID,
				Name:       item.Name,
				Category:   model.CategoryHomelab,
				Confidence: 100,
				Reason:     model.ReasonPrivateIP,
			}
		}
		if r.prober.IsReachable(ctx, uri) {
			return nil
		}
	}

	return &model.Result{
		ID:         item.ID,
		Name:       item.Name,
		Category:   model.CategoryDead,
		Confidence: 100,
		Reason:     model.ReasonUnreachable,
	}
}
