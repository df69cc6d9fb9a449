package chain

import (
	"context"

	"github.com/ib-77/rosterfold/pkg/roster"
)

// Chain wraps a roster.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result roster.Result[T]
}

// Start creates a new chain from a roster.Result
func Start[T any](ctx context.Context, result roster.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: roster.Success(value),
	}
}

// Result returns the underlying roster.Result
func (c *Chain[T]) Result() roster.Result[T] {
	return c.result
}

// Then chains a function that returns roster.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) roster.Result[U]) *Chain[U] {
	if c.result.IsFailure() {
		return &Chain[U]{ctx: c.ctx, result: roster.FailFrom[T, U](c.result)}
	}
	return &Chain[U]{
		ctx:    c.ctx,
		result: onSuccess(c.ctx, c.result.Result()),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	if c.result.IsFailure() {
		return &Chain[U]{ctx: c.ctx, result: roster.FailFrom[T, U](c.result)}
	}
	u, err := tryOnSuccess(c.ctx, c.result.Result())
	if err != nil {
		return &Chain[U]{ctx: c.ctx, result: roster.Fail[U](err)}
	}
	return &Chain[U]{ctx: c.ctx, result: roster.Success(u)}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	if c.result.IsFailure() {
		return &Chain[U]{ctx: c.ctx, result: roster.FailFrom[T, U](c.result)}
	}
	return &Chain[U]{
		ctx:    c.ctx,
		result: roster.Success(onSuccess(c.ctx, c.result.Result())),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	if c.result.IsSuccess() && onSuccess != nil {
		onSuccess(c.ctx, c.result.Result())
	}
	return c
}

// Finally collapses the chain into a final value via success/failure handlers
func Finally[T, U any](c *Chain[T],
	onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U) U {

	if c.result.IsSuccess() {
		return onSuccess(c.ctx, c.result.Result())
	}
	return onFailure(c.ctx, c.result.Err())
}
