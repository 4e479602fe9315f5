// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package capfn provides capability-tiered callback handles and the
// generic operations built on top of them.
//
// A callback handle pairs a behavior with a capability tier that fixes
// what the behavior may do with its captured state and how many times
// it may be invoked:
//
//   - [Fn]: read-only tier — invocable unboundedly, observes but never
//     mutates captured state
//   - [FnMut]: mutating tier — invocable unboundedly, may mutate captured
//     state, at most one call in flight at a time
//   - [FnOnce]: consuming tier — invocable at most once; the single call
//     transfers ownership of captured state into the callback
//
// The tiers form a strict usability ordering: a read-only behavior
// satisfies a mutating requirement, and a mutating behavior satisfies a
// consuming requirement. Widening is explicit via [Fn.Mut], [Fn.Once]
// and [FnMut.Once].
//
// # Design Philosophy
//
// capfn provides:
//   - Minimal concrete handle types with explicit invocation budgets
//   - Dynamic enforcement where Go's type system cannot enforce statically
//     (spent flags for one-shot handles, reentrancy guards for mutating ones)
//   - Terminal, synchronous operations — no operation calls back into another
//
// Go has no capture analysis, so the tier a handle claims is a contract,
// not an inference: constructing a [Fn] over a mutating behavior is a
// caller bug the package cannot detect. What the package does enforce,
// it enforces unconditionally: a consumed [FnOnce] can never run again,
// even when handles cross goroutines.
//
// # Handles
//
//   - [Shared]: Construct a read-only [Fn] handle
//   - [Exclusive]: Construct a mutating [FnMut] handle
//   - [Once]: Construct a consuming [FnOnce] handle
//   - [Lazy]: Construct a zero-argument consuming [Thunk] handle
//   - [FnOnce.Call]: Invoke (panics on reuse)
//   - [FnOnce.TryCall]: Non-panicking variant
//   - [FnOnce.Discard]: Drop without invoking
//
// # Sequence Operations
//
// [Traverse] applies a mutating callback to every element of a slice,
// once each, in ascending index order:
//
//   - [Traverse]: Apply a [FnMut] handle to each element
//   - [TraverseFunc]: Plain-func adaptor
//
// [Retain] filters a slice in place with a mutating predicate: one
// linear pass, survivors keep their relative order, no new allocation
// for the surviving elements:
//
//   - [Retain]: Filter with a [FnMut] predicate handle
//   - [RetainFunc]: Plain-func adaptor
//   - [RetainString]: Code-point view over a string
//   - [Divert]: Build a predicate that moves rejected elements into a
//     caller-owned sink
//   - [Partition]: Non-destructive split into kept and rejected
//
// # Lazy Fallback
//
// [OrElse] and [OrElseEither] resolve a two-state value, invoking a
// consuming fallback only on the absent or failure branch — the
// fallback's side effects occur iff the primary value is missing:
//
//   - [OrElse]: Resolve an [Option], fallback takes no argument
//   - [OrElseEither]: Resolve an [Either], fallback receives the Left payload
//   - [OrElseFunc], [OrElseEitherFunc]: Plain-func adaptors
//
// # Option and Either
//
// [Option] represents presence or absence; [Either] represents success
// (Right) or failure (Left):
//
//   - [Some], [None]: Option constructors
//   - [Option.IsSome], [Option.IsNone], [Option.Get]: Predicates and accessor
//   - [MatchOption], [MapOption], [FlatMapOption]: Combinators
//   - [Left], [Right]: Either constructors
//   - [Either.IsLeft], [Either.IsRight], [Either.GetLeft], [Either.GetRight]
//   - [MatchEither], [MapEither], [FlatMapEither], [MapLeftEither]
//
// # Gated Unlock
//
// [Vault] models a payload protected by a secret. Unlocking is a
// destructive, single-attempt credential check: the credential
// procedure runs exactly once, a mismatch discards the payload, and the
// vault is consumed either way — there is no retry state.
//
//   - [Seal]: Construct a vault from a secret and a payload
//   - [Vault.Unlock]: Single attempt (panics if the vault was already consumed)
//   - [Vault.TryUnlock]: Non-panicking variant
//   - [Vault.Discard]: Drop the vault without an attempt
//
// # Invocation Discipline
//
// Contract violations are programming errors and surface as panics with
// a "capfn:" prefix, never as error values:
//
//   - invoking a consumed [FnOnce] (or unlocking a consumed [Vault])
//   - reentering a [FnMut] while a call is in flight
//
// Expected absences — a missing primary value, a failed credential
// check — are [Option] or [Either] results, not errors.
//
// # Example
//
//	prices := []float64{3.99, 2.99}
//	capfn.TraverseFunc(prices, func(p *float64) { *p *= 0.85 })
//
//	var rejected []int
//	nums := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
//	capfn.Retain(&nums, capfn.Divert(&rejected, func(n int) bool { return n%2 != 0 }))
//	// nums == [1 3 5 7 9], rejected == [2 4 6 8 10]
//
//	v := capfn.Seal("s3cret", "payload")
//	got := v.Unlock(capfn.Lazy(func() string { return "s3cret" }))
//	// got == Some("payload")
package capfn
