// Package tour holds the itinerary state of the client: the draft being
// built, the user's saved tours and the candidate items derived from their
// bookmarks.
//
// A Store is created explicitly and passed to whoever needs it. Reducers
// mutate state synchronously; thunks (Fetch*, SaveCurrentTour) block on the
// backend and record failures in State.Error instead of retrying.
package tour
