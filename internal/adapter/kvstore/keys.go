package kvstore

import "strings"

const (
	DefaultKeyPrefix = "storefront"

	cartKeyName     = "cart"
	wishlistKeyName = "wishlist"
	sessionKeyName  = "session"
	rememberKeyName = "remember"
	shippingKeyName = "shipping"
	usersKeyName    = "users"
)

// Keys builds store keys. Per-scope keys are "<prefix>:<scope>:<name>",
// global keys are "<prefix>:<name>".
type Keys struct {
	prefix string
}

func NewKeys(prefix string) Keys {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return Keys{prefix: prefix}
}

func (k Keys) Scoped(scope, name string) string {
	return k.prefix + ":" + scope + ":" + name
}

func (k Keys) Global(name string) string {
	return k.prefix + ":" + name
}
