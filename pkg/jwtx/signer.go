package jwtx

// Signer issues signed tokens.
type Signer interface {
	Sign(Claims) (string, error)
}
