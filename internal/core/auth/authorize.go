package auth

// CanAccess is the ownership predicate applied by every handler that
// reads or mutates a per-user resource: admins may touch anything,
// everyone else only their own records.
func CanAccess(c *Claims, ownerID string) bool {
	if c == nil {
		return false
	}
	return c.Role == "ADMIN" || c.UserID == ownerID
}
