// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Filter is either a leaf condition or a boolean combinator over filters.
// Its fingerprint is a canonical encoding: structurally equal filters
// fingerprint identically regardless of operand order.
type Filter interface {
	Fingerprint() string
	isOperator() bool
}

// Operator of a FilterOperator.
type Operator string

const (
	OperatorAnd Operator = "AND"
	OperatorOr  Operator = "OR"
	OperatorNot Operator = "NOT"
)

// FilterOperator combines its conditions with Operator. NOT means none of
// the conditions match.
type FilterOperator struct {
	Operator   Operator `json:"operator"`
	Conditions []Filter `json:"conditions"`
}

func And(conditions ...Filter) FilterOperator {
	return FilterOperator{Operator: OperatorAnd, Conditions: conditions}
}

func Or(conditions ...Filter) FilterOperator {
	return FilterOperator{Operator: OperatorOr, Conditions: conditions}
}

func Not(conditions ...Filter) FilterOperator {
	return FilterOperator{Operator: OperatorNot, Conditions: conditions}
}

func (f FilterOperator) Fingerprint() string {
	conditions := f.Conditions
	if conditions == nil {
		conditions = []Filter{}
	}
	return encodeFields(levelOperator, conditions, string(f.Operator))
}

func (FilterOperator) isOperator() bool { return true }

// CompareFilters orders combinators before leaf conditions, then by
// fingerprint. Operand lists are sorted with it before encoding.
func CompareFilters(a, b Filter) int {
	if a.isOperator() != b.isOperator() {
		if a.isOperator() {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Fingerprint(), b.Fingerprint())
}

// EmailFilterCondition is a leaf filter of Email/query. String-set fields are
// matched as sets.
type EmailFilterCondition struct {
	InMailbox               string     `json:"inMailbox,omitempty"`
	InMailboxOtherThan      []string   `json:"inMailboxOtherThan,omitempty"`
	Before                  *time.Time `json:"before,omitempty"`
	After                   *time.Time `json:"after,omitempty"`
	MinSize                 *int64     `json:"minSize,omitempty"`
	MaxSize                 *int64     `json:"maxSize,omitempty"`
	AllInThreadHaveKeyword  string     `json:"allInThreadHaveKeyword,omitempty"`
	SomeInThreadHaveKeyword string     `json:"someInThreadHaveKeyword,omitempty"`
	NoneInThreadHaveKeyword string     `json:"noneInThreadHaveKeyword,omitempty"`
	HasKeyword              string     `json:"hasKeyword,omitempty"`
	NotKeyword              string     `json:"notKeyword,omitempty"`
	HasAttachment           *bool      `json:"hasAttachment,omitempty"`
	Text                    string     `json:"text,omitempty"`
	From                    string     `json:"from,omitempty"`
	To                      string     `json:"to,omitempty"`
	Cc                      string     `json:"cc,omitempty"`
	Bcc                     string     `json:"bcc,omitempty"`
	Subject                 string     `json:"subject,omitempty"`
	Body                    string     `json:"body,omitempty"`
}

func (c EmailFilterCondition) Fingerprint() string {
	return encodeFields(levelCondition,
		optional(c.InMailbox),
		optionalList(c.InMailboxOtherThan),
		c.Before,
		c.After,
		c.MinSize,
		c.MaxSize,
		optional(c.AllInThreadHaveKeyword),
		optional(c.SomeInThreadHaveKeyword),
		optional(c.NoneInThreadHaveKeyword),
		optional(c.HasKeyword),
		optional(c.NotKeyword),
		c.HasAttachment,
		optional(c.Text),
		optional(c.From),
		optional(c.To),
		optional(c.Cc),
		optional(c.Bcc),
		optional(c.Subject),
		optional(c.Body),
	)
}

func (EmailFilterCondition) isOperator() bool { return false }

// MailboxFilterCondition is a leaf filter of Mailbox/query.
type MailboxFilterCondition struct {
	ParentID     string `json:"parentId,omitempty"`
	Name         string `json:"name,omitempty"`
	Role         string `json:"role,omitempty"`
	HasAnyRole   *bool  `json:"hasAnyRole,omitempty"`
	IsSubscribed *bool  `json:"isSubscribed,omitempty"`
}

func (c MailboxFilterCondition) Fingerprint() string {
	return encodeFields(levelCondition,
		optional(c.ParentID),
		optional(c.Name),
		optional(c.Role),
		c.HasAnyRole,
		c.IsSubscribed,
	)
}

func (MailboxFilterCondition) isOperator() bool { return false }

// EmailSubmissionFilterCondition is a leaf filter of EmailSubmission/query.
type EmailSubmissionFilterCondition struct {
	IdentityIDs []string   `json:"identityIds,omitempty"`
	EmailIDs    []string   `json:"emailIds,omitempty"`
	ThreadIDs   []string   `json:"threadIds,omitempty"`
	UndoStatus  UndoStatus `json:"undoStatus,omitempty"`
	Before      *time.Time `json:"before,omitempty"`
	After       *time.Time `json:"after,omitempty"`
}

func (c EmailSubmissionFilterCondition) Fingerprint() string {
	return encodeFields(levelCondition,
		optionalList(c.IdentityIDs),
		optionalList(c.EmailIDs),
		optionalList(c.ThreadIDs),
		optional(string(c.UndoStatus)),
		c.Before,
		c.After,
	)
}

func (EmailSubmissionFilterCondition) isOperator() bool { return false }
