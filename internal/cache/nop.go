package cache

import "context"

// Nop disables redirect caching.
type Nop struct{}

func (Nop) Get(context.Context, string) (string, bool) { return "", false }

func (Nop) Set(context.Context, string, string) {}

func (Nop) Delete(context.Context, string) {}

func (Nop) Close() {}

func (Nop) Stats() (hits, misses uint64, ratio float64) { return 0, 0, 0 }
