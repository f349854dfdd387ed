package auth

// Admin is a back-office account. Admins live in their own table and are
// provisioned out of band, never through the API.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
}
