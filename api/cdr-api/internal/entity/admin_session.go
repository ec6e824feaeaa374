package internal_entity

// AdminSession is what the admin UI stores in redis for a logged-in user.
type AdminSession struct {
	AdminUserId uint64   `json:"admin_user_id"`
	Username    string   `json:"username"`
	Roles       []string `json:"roles"`
}
