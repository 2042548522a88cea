// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless mail sync runtime.
//
// It wires the HTTP transport, the in-memory cache, the worker pool and the
// per-account queue into the mail service, performs an initial sync of the
// configured mailbox and then keeps the account in sync in the background
// until the process is asked to stop.
package client
