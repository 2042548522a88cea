// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// JSON pointer paths used in result references.
const (
	PathIDs               = "/ids"
	PathAddedIDs          = "/added/*/id"
	PathListIDs           = "/list/*/id"
	PathListThreadIDs     = "/list/*/threadId"
	PathListEmailIDs      = "/list/*/emailIds"
	PathCreated           = "/created"
	PathUpdated           = "/updated"
	PathUpdatedProperties = "/updatedProperties"
)

// ResultReference points at a value inside the result of an earlier
// invocation of the same request. The server substitutes it before running
// the invocation that carries it.
type ResultReference struct {
	ResultOf string `json:"resultOf"`
	Name     string `json:"name"`
	Path     string `json:"path"`
}

// Invocation is one method call of a request. It is encoded as the triple
// [name, arguments, id].
type Invocation struct {
	Name string
	Args any
	ID   string
}

func (i Invocation) MarshalJSON() ([]byte, error) {
	args := i.Args
	if args == nil {
		args = struct{}{}
	}
	return json.Marshal([]any{i.Name, args, i.ID})
}

// UnmarshalJSON keeps the arguments as json.RawMessage.
func (i *Invocation) UnmarshalJSON(b []byte) error {
	var triple []json.RawMessage
	if err := json.Unmarshal(b, &triple); err != nil {
		return err
	}
	if len(triple) != 3 {
		return fmt.Errorf("invocation must have 3 elements, got %d", len(triple))
	}
	if err := json.Unmarshal(triple[0], &i.Name); err != nil {
		return fmt.Errorf("invocation name: %w", err)
	}
	if err := json.Unmarshal(triple[2], &i.ID); err != nil {
		return fmt.Errorf("invocation id: %w", err)
	}
	i.Args = triple[1]
	return nil
}

// Request is the batch envelope sent to the API endpoint.
type Request struct {
	Using       []string     `json:"using"`
	MethodCalls []Invocation `json:"methodCalls"`
}

// ResponseInvocation is one method response, encoded as [name, result, id].
type ResponseInvocation struct {
	Name   string
	Result json.RawMessage
	ID     string
}

func (r ResponseInvocation) MarshalJSON() ([]byte, error) {
	result := r.Result
	if len(result) == 0 {
		result = json.RawMessage("{}")
	}
	return json.Marshal([]any{r.Name, result, r.ID})
}

func (r *ResponseInvocation) UnmarshalJSON(b []byte) error {
	var triple []json.RawMessage
	if err := json.Unmarshal(b, &triple); err != nil {
		return err
	}
	if len(triple) != 3 {
		return fmt.Errorf("method response must have 3 elements, got %d", len(triple))
	}
	if err := json.Unmarshal(triple[0], &r.Name); err != nil {
		return fmt.Errorf("method response name: %w", err)
	}
	if err := json.Unmarshal(triple[2], &r.ID); err != nil {
		return fmt.Errorf("method response id: %w", err)
	}
	r.Result = triple[1]
	return nil
}

// NewResponseInvocation encodes result and builds a response triple.
func NewResponseInvocation(name string, result any, id string) (ResponseInvocation, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return ResponseInvocation{}, fmt.Errorf("encode %s result: %w", name, err)
	}
	return ResponseInvocation{Name: name, Result: raw, ID: id}, nil
}

// Response is the batch envelope returned by the API endpoint.
type Response struct {
	MethodResponses []ResponseInvocation `json:"methodResponses"`
	SessionState    string               `json:"sessionState,omitempty"`
}

// ProblemDetails is the request-level error body (RFC 7807) returned when the
// whole request is rejected.
type ProblemDetails struct {
	Type   string `json:"type"`
	Status int    `json:"status,omitempty"`
	Detail string `json:"detail,omitempty"`
	Limit  string `json:"limit,omitempty"`
}

// MethodErrorResult is the result of a method response named "error".
type MethodErrorResult struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}
