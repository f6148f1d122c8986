package domain

// Entity is implemented by identity-bearing domain objects. Equality between
// entities is defined solely by identity, never by attribute values.
type Entity[ID comparable] interface {
	Identity() ID
}

// SameEntity reports whether two entities refer to the same identity.
// Nil-safe variants are not needed: the factories never return nil entities.
func SameEntity[ID comparable](a, b Entity[ID]) bool {
	return a.Identity() == b.Identity()
}
