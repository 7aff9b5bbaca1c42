// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the derived vault key for the lifetime of an
// unlocked session.
//
// A [Session] is a single owned key slot with two states, Locked and
// Unlocked. The key only ever lives inside the slot: it is derived on
// [Session.Unlock], used by [Session.EncryptField] and [Session.DecryptField],
// and overwritten on [Session.Lock]. There is no accessor for it.
//
// Field operations may run concurrently with each other. Lock waits for
// in-flight field operations and, once it returns, none can observe the old
// key. Unlock and Lock transitions are expected to be serialized by the
// caller.
package session
