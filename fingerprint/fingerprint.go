// Package fingerprint derives deterministic identity strings from
// ordered sequences of inputs. The collection engine fingerprints the
// identity-relevant text of a traversal state (coordinates, versions,
// repository ids) and uses the result as a cache key, so structurally
// identical subgraphs are computed once.
//
// Two engines fed the identical ordered sequence of non-empty inputs
// produce identical fingerprints; that is the whole contract. The string
// is an in-process identity, not a wire format.
//
// Reference: https://github.com/apache/maven-resolver/blob/maven-resolver-1.0.x/maven-resolver-impl/src/main/java/org/eclipse/aether/internal/impl/SimpleDigest.java
package fingerprint

import (
	"crypto"
	"encoding/hex"
	"hash"
	"strconv"

	// Digest backends for the attempt list below.
	_ "crypto/md5"
	_ "crypto/sha1"
)

// backends is the ordered attempt list evaluated once per engine: the
// first algorithm available in this binary wins and fixes the output
// format. When neither is available (e.g. stripped crypto backends) the
// engine runs on a rolling integer hash instead.
var backends = []crypto.Hash{crypto.SHA1, crypto.MD5}

// rollingSeed is the initial accumulator value in rolling-hash mode.
// Non-zero so that leading inputs hashing to zero still move the state.
const rollingSeed = 13

// Engine accumulates an ordered sequence of string inputs into a single
// fingerprint. An engine belongs to exactly one logical fingerprint
// computation: one owner performs the Update calls and a single Digest
// call, then discards the instance. It is not safe for concurrent use;
// concurrent computations each take their own engine.
type Engine struct {
	digest  hash.Hash // nil in rolling-hash mode
	rolling int64
}

// New creates an engine backed by the first available digest algorithm,
// falling back to the rolling hash when none is.
func New() *Engine {
	return newEngine(backends)
}

func newEngine(candidates []crypto.Hash) *Engine {
	for _, c := range candidates {
		if c.Available() {
			return &Engine{digest: c.New()}
		}
	}
	return &Engine{rolling: rollingSeed}
}

// Update folds input into the fingerprint. Empty input is ignored. Calls
// are cumulative and order-sensitive.
func (e *Engine) Update(input string) {
	if input == "" {
		return
	}
	if e.digest != nil {
		e.digest.Write([]byte(input))
		return
	}
	e.rolling = e.rolling*31 + int64(stringHash(input))
}

// Digest finalizes the fingerprint and renders it as lowercase
// hexadecimal: two zero-padded characters per byte with a digest
// backend, the accumulator's unsigned value without padding in
// rolling-hash mode. Call it once per computation and do not Update
// afterwards.
func (e *Engine) Digest() string {
	if e.digest != nil {
		return hex.EncodeToString(e.digest.Sum(nil))
	}
	return strconv.FormatUint(uint64(e.rolling), 16)
}

// Of fingerprints the given inputs in order using a fresh engine.
func Of(inputs ...string) string {
	e := New()
	for _, input := range inputs {
		e.Update(input)
	}
	return e.Digest()
}

// stringHash is the JVM String.hashCode recurrence over code points,
// which the rolling-hash fold of the reference implementation builds on.
// Overflow wraps, as it does there.
func stringHash(s string) int32 {
	var h int32
	for _, r := range s {
		h = 31*h + int32(r)
	}
	return h
}
