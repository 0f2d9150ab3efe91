// Package itinerary drives the day/city/item selection of a tour draft.
//
// Every day of the draft is in one of three states:
//
//	Empty         no city, no items
//	CitySelected  city chosen, no items
//	Locked        at least one item selected
//
// A Locked day keeps its city until a change is explicitly confirmed, which
// clears the day. Items offered for a day are filtered by the day's city and,
// for matches, by the calendar day they are played on. Once every day has
// been reviewed the Builder hands the organized draft off to the ordering
// step.
package itinerary
