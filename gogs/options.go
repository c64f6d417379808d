package gogs

// CreateUserOption is the body of an admin user creation.
type CreateUserOption struct {
	SourceID   *int64 `json:"source_id"`
	LoginName  string `json:"login_name"`
	Username   string `json:"username" validate:"required,max=35,gogs_name"`
	FullName   string `json:"full_name" validate:"max=100"`
	Email      string `json:"email" validate:"required,max=254,email"`
	Password   string `json:"password" validate:"max=255"`
	SendNotify bool   `json:"send_notify"`
}

// EditUserOption is the body of an admin user edit. Nil fields are sent as
// null and left unchanged by the server.
type EditUserOption struct {
	SourceID         *int64 `json:"source_id"`
	LoginName        string `json:"login_name"`
	FullName         string `json:"full_name" validate:"max=100"`
	Email            string `json:"email" validate:"omitempty,max=254,email"`
	Password         string `json:"password" validate:"max=255"`
	Website          string `json:"website" validate:"max=50"`
	Location         string `json:"location" validate:"max=50"`
	Active           *bool  `json:"active"`
	Admin            *bool  `json:"admin"`
	AllowGitHook     *bool  `json:"allow_git_hook"`
	AllowImportLocal *bool  `json:"allow_import_local"`
	MaxRepoCreation  *int   `json:"max_repo_creation"`
}

// CreateOrgOption is the body of an admin organization creation.
type CreateOrgOption struct {
	Username    string `json:"username" validate:"required,gogs_name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
}

// EditOrgOption is the body of an organization edit.
type EditOrgOption struct {
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
}

// Team permissions accepted by Gogs.
const (
	PermissionRead  = "read"
	PermissionWrite = "write"
	PermissionAdmin = "admin"
)

// CreateTeamOption is the body of an admin team creation.
type CreateTeamOption struct {
	Name        string `json:"name" validate:"required,max=30"`
	Description string `json:"description" validate:"max=255"`
	Permission  string `json:"permission" validate:"omitempty,oneof=read write admin"`
}
