package contextkeys

// Keys under which the auth middleware stores the caller identity in
// the gin context for downstream handlers.
const (
	UserIDKey = "userID"
	RoleKey   = "role"
	PhoneKey  = "phone"
)
