package user

// User is a community member. Uid is the external identity threaded through
// every request; tasks and connections reference it, never the username.
type User struct {
	Uid         string
	Username    string
	DisplayName string
}
