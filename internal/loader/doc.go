// Package loader implements the fetch-and-settle lifecycle behind the listing
// and detail screens.
//
// Each loader is created on screen mount in its loading state, issues exactly
// one request against its source, and settles into a terminal state that never
// carries an error:
//
//	Listing: Loading -> Ready(items)           (failures settle as Ready with no items)
//	Detail:  Loading -> Found(detail)|NotFound (failures settle as NotFound)
//
// Fetching and applying are separate steps so a UI runtime can perform the
// request off its event loop and apply the result later. Applying to an
// unmounted loader is a no-op.
package loader
