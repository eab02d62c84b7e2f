// Package services holds the core of the system: the visibility policy, the
// social graph engine, the content store, the feed assembler and the identity
// store. Handlers stay thin and repositories stay dumb; the rules live here.
package services

import "github.com/Dhruv9449/Chitros/internal/models"

// CanView reports whether the actor may read a post: the author always may,
// anyone else needs a follow edge to the author and a published post. An
// unpublished post is visible only to its author regardless of follow state.
func CanView(actorID uint, post *models.Post, follows bool) bool {
	if actorID == post.AuthorID {
		return true
	}
	return follows && post.Published
}

// CanInteract reports whether the actor may comment on or like the author's
// posts: the author or any follower. Published status is deliberately not
// checked here, so a follower can still comment on an unpublished post they
// cannot read. Observed behavior, kept as-is.
func CanInteract(actorID, authorID uint, follows bool) bool {
	return actorID == authorID || follows
}

// ProfileLevelFor selects the profile variant a viewer is entitled to:
// the owner gets the full view with all their posts, a follower gets the full
// view with published posts only, anyone else gets the summary counts.
func ProfileLevelFor(actorID, targetID uint, follows bool) models.ProfileLevel {
	switch {
	case actorID == targetID:
		return models.ProfileSelf
	case follows:
		return models.ProfileFollower
	default:
		return models.ProfileSummary
	}
}
