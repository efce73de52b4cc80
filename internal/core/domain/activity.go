package domain

import "time"

// ActivityType enumerates the user actions recorded in the activity log.
type ActivityType string

const (
	ActivityRecipeCreated   ActivityType = "recipe_created"
	ActivityRecipeUpdated   ActivityType = "recipe_updated"
	ActivityRecipeDeleted   ActivityType = "recipe_deleted"
	ActivityReviewAdded     ActivityType = "review_added"
	ActivityFavoriteToggled ActivityType = "favorite_toggled"
)

// ActivityEntry is an immutable, timestamped record of a user-initiated
// state change, used for the personal history view.
type ActivityEntry struct {
	Username    string       `json:"username"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
}
