package models

// Provider carries the fields the scheduling backend needs: identity for
// keying schedule documents and the token hash the auth middleware checks.
// Profile, catalogue and registration live with the wider marketplace.
type Provider struct {
	ID        string `bson:"id" json:"id"`
	Email     string `bson:"email" json:"email"`
	Name      string `bson:"name" json:"name"`
	TokenHash string `bson:"token_hash" json:"-"`
}
