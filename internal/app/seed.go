package app

import "relief/internal/core"

// NextSeed draws a fresh non-zero seed. Zero is skipped because
// core.Surface.Reset treats it as "keep the configured seed".
func NextSeed(r *core.RNG) int64 {
	for {
		if seed := r.Int63(); seed != 0 {
			return seed
		}
	}
}
