package ctxkeys

type Key int

const (
	AccessLevel Key = iota
	Username        // string: signed-in user, "" when anonymous
	SessionStarted  // time.Time: zero when anonymous
)
