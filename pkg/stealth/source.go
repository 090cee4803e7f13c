package stealth

import "math/rand/v2"

// Source supplies the random draws consumed while a payload is rendered:
// fingerprint noise seeds, jitter magnitudes, and identity-string version
// picks. Passing it explicitly keeps GenerateWith deterministic under test;
// the package-level entry points fall back to DefaultSource.
//
// *rand.Rand from math/rand/v2 satisfies Source directly.
type Source interface {
	IntN(n int) int
	Int64() int64
	Float64() float64
}

// processSource draws from the process-wide math/rand/v2 generator, which is
// safe for concurrent use without coordination.
type processSource struct{}

func (processSource) IntN(n int) int   { return rand.IntN(n) }
func (processSource) Int64() int64     { return rand.Int64() }
func (processSource) Float64() float64 { return rand.Float64() }

// DefaultSource is the ambient randomization source used by Generate and
// LaunchArguments. It is unseeded and lives for the whole process.
var DefaultSource Source = processSource{}
