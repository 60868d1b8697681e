package service

// ownedBy is the single ownership predicate for the whole application:
// an operation on an owned record is allowed iff the acting identity is
// the record's author. Every author-only path (comment edit/delete,
// note detail/edit/delete) goes through this one function rather than
// repeating the comparison inline.
//
// Callers translate a false result into NotFound, not Forbidden: a
// non-owner must not learn that the record exists.
func ownedBy(authorID, userID string) bool {
	return userID != "" && authorID == userID
}
