// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package metrics provides a structured, allocation-free counter
// registry for the transport core's success and failure paths.
//
// Counter names are observable through the Registry for an external
// sink to export, but are not part of the core's contract with callers
// (per the wire framing component's "metrics hooks are not part of the
// external contract" note): callers should not depend on the exact
// field layout, only on the Registry's read methods.
//
// A nil *Registry is valid and every method on it is a no-op, so the
// wire and bufpool packages can record into an optional registry
// without forcing every caller to construct one.
package metrics
