package hash

// Hasher defines one-way password hashing. Verify must compare in constant
// time; no other component may compare passwords by equality.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) (bool, error)
}
