// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func emailQuery(f Filter) EmailQuery {
	return EmailQuery{Filter: f}
}

// ── commutativity ────────────────────────────────────────────────────────────

func TestFingerprint_AndOperandOrderDoesNotMatter(t *testing.T) {
	one := EmailFilterCondition{Text: "one"}
	two := EmailFilterCondition{Text: "two"}
	three := EmailFilterCondition{Text: "three"}

	a := emailQuery(And(one, Not(three), two))
	b := emailQuery(And(two, Not(three), one))
	c := emailQuery(And(Not(three), two, one))

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Equal(t, a.Fingerprint(), c.Fingerprint())
}

func TestFingerprint_StringSetOrderDoesNotMatter(t *testing.T) {
	a := emailQuery(EmailFilterCondition{InMailboxOtherThan: []string{"spam", "trash"}})
	b := emailQuery(EmailFilterCondition{InMailboxOtherThan: []string{"trash", "spam"}})

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprint_OrOfStringSets(t *testing.T) {
	a := emailQuery(Or(
		EmailFilterCondition{InMailboxOtherThan: []string{"spam", "trash"}},
		EmailFilterCondition{InMailbox: "inbox"},
	))
	b := emailQuery(Or(
		EmailFilterCondition{InMailbox: "inbox"},
		EmailFilterCondition{InMailboxOtherThan: []string{"trash", "spam"}},
	))

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprint_NestedMailboxOperators(t *testing.T) {
	a := MailboxQuery{Filter: Or(
		And(MailboxFilterCondition{Name: "a"}, MailboxFilterCondition{Role: "inbox"}),
		MailboxFilterCondition{ParentID: "p1"},
	)}
	b := MailboxQuery{Filter: Or(
		MailboxFilterCondition{ParentID: "p1"},
		And(MailboxFilterCondition{Role: "inbox"}, MailboxFilterCondition{Name: "a"}),
	)}

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprint_NestedSubmissionOperators(t *testing.T) {
	a := EmailSubmissionQuery{Filter: Or(
		EmailSubmissionFilterCondition{EmailIDs: []string{"e1", "e2"}},
		And(
			EmailSubmissionFilterCondition{UndoStatus: UndoStatusPending},
			EmailSubmissionFilterCondition{IdentityIDs: []string{"i1"}},
		),
	)}
	b := EmailSubmissionQuery{Filter: Or(
		And(
			EmailSubmissionFilterCondition{IdentityIDs: []string{"i1"}},
			EmailSubmissionFilterCondition{UndoStatus: UndoStatusPending},
		),
		EmailSubmissionFilterCondition{EmailIDs: []string{"e2", "e1"}},
	)}

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

// ── sensitivity ──────────────────────────────────────────────────────────────

func TestFingerprint_LeafValueChangesFingerprint(t *testing.T) {
	pending := EmailSubmissionQuery{Filter: EmailSubmissionFilterCondition{UndoStatus: UndoStatusPending}}
	canceled := EmailSubmissionQuery{Filter: EmailSubmissionFilterCondition{UndoStatus: UndoStatusCanceled}}

	assert.NotEqual(t, pending.Fingerprint(), canceled.Fingerprint())
}

func TestFingerprint_DistinguishesQueries(t *testing.T) {
	yes, no := true, false
	size := int64(10)
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	queries := map[string]EmailQuery{
		"no filter":        {},
		"text one":         emailQuery(EmailFilterCondition{Text: "one"}),
		"subject one":      emailQuery(EmailFilterCondition{Subject: "one"}),
		"and one":          emailQuery(And(EmailFilterCondition{Text: "one"})),
		"or one":           emailQuery(Or(EmailFilterCondition{Text: "one"})),
		"not one":          emailQuery(Not(EmailFilterCondition{Text: "one"})),
		"attachment yes":   emailQuery(EmailFilterCondition{HasAttachment: &yes}),
		"attachment no":    emailQuery(EmailFilterCondition{HasAttachment: &no}),
		"min size":         emailQuery(EmailFilterCondition{MinSize: &size}),
		"max size":         emailQuery(EmailFilterCondition{MaxSize: &size}),
		"before":           emailQuery(EmailFilterCondition{Before: &ts}),
		"after":            emailQuery(EmailFilterCondition{After: &ts}),
		"empty condition":  emailQuery(EmailFilterCondition{}),
		"collapsed":        {CollapseThreads: true},
		"sorted asc":       {Sort: []Comparator{{Property: "receivedAt", IsAscending: true}}},
		"sorted desc":      {Sort: []Comparator{{Property: "receivedAt"}}},
		"sorted two keys":  {Sort: []Comparator{{Property: "receivedAt"}, {Property: "size"}}},
		"sorted reversed":  {Sort: []Comparator{{Property: "size"}, {Property: "receivedAt"}}},
		"inbox and spam":   emailQuery(And(EmailFilterCondition{InMailbox: "inbox"}, EmailFilterCondition{InMailbox: "spam"})),
		"inbox, and spam":  emailQuery(And(EmailFilterCondition{InMailbox: "inbox"}, And(EmailFilterCondition{InMailbox: "spam"}))),
		"divider in value": emailQuery(EmailFilterCondition{Text: "a\x01b"}),
		"divider split":    emailQuery(EmailFilterCondition{Text: "a", From: "b"}),
	}

	seen := make(map[string]string, len(queries))
	for name, q := range queries {
		fp := q.Fingerprint()
		if other, ok := seen[fp]; ok {
			t.Errorf("%q and %q share fingerprint %q", name, other, fp)
		}
		seen[fp] = name
	}
}

func TestFingerprint_EmptyListEqualsAbsent(t *testing.T) {
	assert.Equal(t,
		emailQuery(EmailFilterCondition{InMailbox: "inbox"}).Fingerprint(),
		emailQuery(EmailFilterCondition{InMailbox: "inbox", InMailboxOtherThan: []string{}}).Fingerprint(),
	)
	assert.Equal(t,
		EmailSubmissionQuery{Filter: EmailSubmissionFilterCondition{}}.Fingerprint(),
		EmailSubmissionQuery{Filter: EmailSubmissionFilterCondition{EmailIDs: []string{}, ThreadIDs: []string{}}}.Fingerprint(),
	)
	assert.Equal(t, EmailQuery{}.Fingerprint(), EmailQuery{Sort: []Comparator{}}.Fingerprint())
	assert.Equal(t, MailboxQuery{}.Fingerprint(), MailboxQuery{Sort: []Comparator{}}.Fingerprint())
}

func TestFingerprint_KindIsPartOfKey(t *testing.T) {
	assert.NotEqual(t, EmailQuery{}.Fingerprint(), EmailSubmissionQuery{}.Fingerprint())
	assert.NotEqual(t, EmailQuery{}.Fingerprint(), MailboxQuery{}.Fingerprint())
}

// ── encoder ──────────────────────────────────────────────────────────────────

func TestEncodeFields_AbsentDiffersFromEmpty(t *testing.T) {
	absent := encodeFields(levelCondition, nil, "x")
	empty := encodeFields(levelCondition, "", "x")

	assert.NotEqual(t, absent, empty)
}

func TestEncodeFields_NilSliceDiffersFromEmptySlice(t *testing.T) {
	var none []string
	assert.NotEqual(t,
		encodeFields(levelCondition, none),
		encodeFields(levelCondition, []string{}),
	)
}

func TestEncodeFields_DoesNotMutateInput(t *testing.T) {
	set := []string{"b", "a"}
	_ = encodeFields(levelCondition, set)

	assert.Equal(t, []string{"b", "a"}, set)
}

func TestEncodeFields_Deterministic(t *testing.T) {
	q := emailQuery(And(EmailFilterCondition{Text: "x"}, Not(EmailFilterCondition{From: "y"})))
	assert.Equal(t, q.Fingerprint(), q.Fingerprint())
}

func TestCompareFilters_OperatorsFirst(t *testing.T) {
	op := And(EmailFilterCondition{Text: "z"})
	leaf := EmailFilterCondition{Text: "a"}

	assert.Equal(t, -1, CompareFilters(op, leaf))
	assert.Equal(t, 1, CompareFilters(leaf, op))
	assert.Equal(t, 0, CompareFilters(leaf, EmailFilterCondition{Text: "a"}))
}
