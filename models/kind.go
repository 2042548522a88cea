// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// EntityKind is the closed set of object types the sync core tracks. Every
// method name on the wire is "<EntityKind>/<Verb>".
type EntityKind string

const (
	KindMailbox         EntityKind = "Mailbox"
	KindThread          EntityKind = "Thread"
	KindEmail           EntityKind = "Email"
	KindIdentity        EntityKind = "Identity"
	KindEmailSubmission EntityKind = "EmailSubmission"
)

// Verb is the action half of a method name.
type Verb string

const (
	VerbGet          Verb = "get"
	VerbChanges      Verb = "changes"
	VerbQuery        Verb = "query"
	VerbQueryChanges Verb = "queryChanges"
	VerbSet          Verb = "set"
)

// Capability URIs announced in the "using" list of a request.
const (
	CapabilityCore       = "urn:ietf:params:jmap:core"
	CapabilityMail       = "urn:ietf:params:jmap:mail"
	CapabilitySubmission = "urn:ietf:params:jmap:submission"
)

// MethodErrorName is the method name of a server-declared per-invocation error.
const MethodErrorName = "error"

// MethodName joins kind and verb, e.g. "Email/queryChanges".
func MethodName(kind EntityKind, verb Verb) string {
	return string(kind) + "/" + string(verb)
}

// Capability returns the capability URI a method of this kind requires.
func (k EntityKind) Capability() string {
	switch k {
	case KindIdentity, KindEmailSubmission:
		return CapabilitySubmission
	case KindMailbox, KindThread, KindEmail:
		return CapabilityMail
	default:
		return CapabilityCore
	}
}

// KindOf extracts the entity kind from a method name. The second return value
// is false when the name has no "/" separator.
func KindOf(methodName string) (EntityKind, bool) {
	kind, _, ok := strings.Cut(methodName, "/")
	if !ok {
		return "", false
	}
	return EntityKind(kind), true
}
