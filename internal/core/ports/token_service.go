package ports

// TokenIdentity is the identity payload a token is issued for.
type TokenIdentity struct {
	Email string
	Name  string
}

// TokenService issues signed bearer tokens.
type TokenService interface {
	Issue(identity TokenIdentity) (string, error)
}
