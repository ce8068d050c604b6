package session

// Store defines the session storage contract. Service and handlers depend
// ONLY on this interface.
type Store interface {
	Save(s *Session) error
	Find(id string) (*Session, bool)
	Delete(id string)
}
