package batch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-jmap-sync/internal/workers"
	"github.com/MKhiriev/go-jmap-sync/models"
)

// MethodResponses is the successful answer to one invocation: the first
// response with its correlation id plus any further ones.
type MethodResponses struct {
	Main       models.ResponseInvocation
	Additional []models.ResponseInvocation
}

// Pending is the handle returned by Batch.Add. It resolves once the batch
// has been executed.
type Pending struct {
	id     string
	name   string
	future *workers.Future[MethodResponses]
}

// ID returns the correlation id of the invocation.
func (p *Pending) ID() string { return p.id }

// Name returns the method name of the invocation.
func (p *Pending) Name() string { return p.name }

// Ref builds a reference to the value at path in this invocation's result.
// It is only valid in invocations added to the same batch after p.
func (p *Pending) Ref(path string) *models.ResultReference {
	return &models.ResultReference{ResultOf: p.id, Name: p.name, Path: path}
}

func (p *Pending) Future() *workers.Future[MethodResponses] {
	return p.future
}

// Await blocks until the batch resolved this invocation or ctx is done.
func (p *Pending) Await(ctx context.Context) (MethodResponses, error) {
	return p.future.Await(ctx)
}

// Main awaits p and decodes its main response into T.
func Main[T any](ctx context.Context, p *Pending) (T, error) {
	var out T

	res, err := p.Await(ctx)
	if err != nil {
		return out, err
	}
	if res.Main.Name != p.name {
		return out, fmt.Errorf("%w: %s answered with %s", ErrUnexpectedMethod, p.name, res.Main.Name)
	}
	if err = json.Unmarshal(res.Main.Result, &out); err != nil {
		return out, fmt.Errorf("%w: %s: %w", ErrDecodingResult, p.name, err)
	}

	return out, nil
}
