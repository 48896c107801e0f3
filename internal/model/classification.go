// Package model defines the core domain models used throughout the application.
package model

// Categories assigned by the pipeline itself, outside the published taxonomy.
// The classification service is never asked to produce these.
const (
	// CategoryHomelab marks entries pointing at private-network infrastructure.
	CategoryHomelab = "Personal/Homelab"
	// CategoryDead marks entries whose URIs are all unreachable.
	CategoryDead = "Dead"
)

// Result reasons produced by the local rule cascade.
const (
	ReasonMappedFolder  = "Mapped folder"
	ReasonMappedDomain  = "Mapped domain"
	ReasonPrivateIP     = "Private IP"
	ReasonUnreachable   = "URL unreachable"
	ReasonUncategorized = "Uncategorized"
)

// Result is the classification outcome for exactly one Item. The pipeline
// produces one Result per input Item, in input order.
type Result struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"` // empty means unresolved
	Confidence int    `json:"confidence"`
	Reason     string `json:"reason"`
}

// Uncategorized builds the fallback Result for an item the pipeline could not
// resolve by rules, cache, or the classification service.
func Uncategorized(item *Item) Result {
	return Result{
		ID:     item.ID,
		Name:   item.Name,
		Reason: ReasonUncategorized,
	}
}
