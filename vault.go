// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capfn

import (
	"sync/atomic"
)

// Vault holds a payload protected by a secret.
// Unlocking is a destructive, single-attempt credential check, not a
// retryable lock: the vault transitions Unused → Spent on the one
// permitted attempt, Spent is terminal, and the payload survives only
// a matching credential.
//
// Vault enforces the same one-shot discipline as [FnOnce]: a second
// Unlock panics, TryUnlock reports false, and Discard drops the vault
// without an attempt.
type Vault[S comparable, P any] struct {
	used    atomic.Uintptr
	secret  S
	payload P
}

// Seal creates a vault protecting payload with secret.
// The vault owns both from this point on.
func Seal[S comparable, P any](secret S, payload P) *Vault[S, P] {
	return &Vault[S, P]{secret: secret, payload: payload}
}

// Unlock consumes the vault with a single credential attempt.
// proc is invoked exactly once to obtain a candidate credential, which
// is compared against the stored secret by value. On a match the
// payload is moved out and returned present; on a mismatch the payload
// is dropped and the result is absent. Either way the vault is spent —
// its secret and payload are zeroed so no stale data remains readable.
//
// A mismatch is a normal outcome, not an error. Panics only if the
// vault was already unlocked or discarded.
//
// Operations at the consuming tier accept any tier: widen a [Fn] or
// [FnMut] credential procedure with its Once method.
func (v *Vault[S, P]) Unlock(proc *Thunk[S]) Option[P] {
	if v.used.Add(1) != 1 {
		panic("capfn: vault unlocked twice")
	}
	return v.attempt(proc)
}

// TryUnlock attempts to consume the vault.
// Returns (result, true) on the first attempt, or (zero, false) if the
// vault was already consumed. The credential procedure is not invoked
// on a spent vault.
func (v *Vault[S, P]) TryUnlock(proc *Thunk[S]) (Option[P], bool) {
	if v.used.Add(1) != 1 {
		return None[P](), false
	}
	return v.attempt(proc), true
}

// attempt runs the single credential check and clears the vault.
func (v *Vault[S, P]) attempt(proc *Thunk[S]) Option[P] {
	candidate := proc.Call(struct{}{})
	matched := candidate == v.secret
	payload := v.payload

	var zeroS S
	var zeroP P
	v.secret = zeroS
	v.payload = zeroP

	if matched {
		return Some(payload)
	}
	return None[P]()
}

// Discard marks the vault as consumed without an unlock attempt.
// The payload is dropped.
func (v *Vault[S, P]) Discard() {
	v.used.Store(1)
	var zeroS S
	var zeroP P
	v.secret = zeroS
	v.payload = zeroP
}
