package domain

import "strings"

// KeySeparator joins the public and private segments of a pool key.
const KeySeparator = "_"

type GeneratedKey struct {
	Value string
}

type UsedKey struct {
	ID          int64
	Value       string
	OwnerUserID int64
}

// SplitKey returns the public short key (the segment before the first
// separator) and the secret key (the whole value).
func SplitKey(value string) (public, secret string) {
	public, _, _ = strings.Cut(value, KeySeparator)
	return public, value
}

type PoolStats struct {
	Available int `json:"available"`
	Consumed  int `json:"consumed"`
}
