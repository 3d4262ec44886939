package errorx

type Code int

var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	// Common codes
	BadRequest      Code = 100001
	BadResponse     Code = 100002
	NotFound        Code = 100003
	Unauthenticated Code = 100004
	AlreadyExists   Code = 100005
	Internal        Code = 100006
	Unavailable     Code = 100007
	TooManyRequests Code = 100008

	// Connection codes
	NotConnected  Code = 200001
	RefreshFailed Code = 200002
)
