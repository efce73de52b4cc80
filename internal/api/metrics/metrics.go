// Package metrics defines and registers all custom Prometheus metrics for
// the recipe platform API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register themselves with the
// default registry via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recipes"

// RecipesCreatedTotal counts newly created recipes.
// Label:
//   - role: the creating user's role ("admin" or "contributor")
var RecipesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recipes_created_total",
		Help:      "Total number of recipes created, by author role.",
	},
	[]string{"role"},
)

// RecipesDeletedTotal counts recipes removed from the catalog.
var RecipesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recipes_deleted_total",
		Help:      "Total number of recipes deleted.",
	},
)

// ApprovalChangesTotal counts admin approval flips.
// Label:
//   - state: "approved" or "unapproved"
var ApprovalChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "approval_changes_total",
		Help:      "Total number of recipe approval changes, by resulting state.",
	},
	[]string{"state"},
)

// ReviewsAddedTotal counts submitted reviews.
// Label:
//   - rating: the review's rating value ("1" through "5")
var ReviewsAddedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_added_total",
		Help:      "Total number of reviews added, by rating.",
	},
	[]string{"rating"},
)

// FavoritesToggledTotal counts favorite mutations.
// Label:
//   - action: "add" or "remove"
var FavoritesToggledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorites_toggled_total",
		Help:      "Total number of favorite toggles, by action.",
	},
	[]string{"action"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
