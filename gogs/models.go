package gogs

import "github.com/kbukum/gogskit/entity"

// UserResult is a Gogs user.
type UserResult struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// KeyResult is a public SSH key of a user.
type KeyResult struct {
	ID    int64  `json:"id"`
	Key   string `json:"key"`
	URL   string `json:"url"`
	Title string `json:"title"`
	// CreatedAt keeps the server's UTC offset. It is zero when the server
	// sent no parsable timestamp.
	CreatedAt entity.Timestamp `json:"created_at"`
}

// TokenResult is an access token.
type TokenResult struct {
	Name string `json:"name"`
	Sha1 string `json:"sha1"`
}

// OrganizationResult is a Gogs organization.
type OrganizationResult struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	FullName    string `json:"full_name"`
	AvatarURL   string `json:"avatar_url"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
}

// TeamResult is a team of an organization.
type TeamResult struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Permission  string `json:"permission"`
}
