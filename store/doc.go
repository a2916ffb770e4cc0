// Package store is the single-table client for the propman DynamoDB table.
//
// The store knows nothing about entity kinds beyond the key layout exported by the
// schema package: it reads and writes flat attribute maps addressed by a rendered
// [schema.Key], and queries one partition of the base table or of a shared secondary
// index, always restricted by a sort key condition that scopes the query to one kind.
//
// # Operations
//
//   - [Store.Get] returns [ErrNotFound] when no record exists
//   - [Store.Put] stamps createdAt and updatedAt; with IfNotExists it fails with
//     [ErrConditionalWriteFailed] instead of overwriting
//   - [Store.Query] returns one page in ascending sort key order with an opaque
//     [Cursor] for the next page
//   - [Store.Update] merges attributes into an existing record and returns the result
//   - [Store.Delete] is idempotent
//
// # Pagination
//
// The page size defaults to [Config.DefaultLimit] (20). A [Cursor] is an encoded
// continuation key; it is bound to the partition and sort condition it was issued for
// and is rejected with [ErrInvalidCursor] when replayed against a different scope.
//
// # Errors
//
// AWS errors are returned as-is. The store never retries and never applies its own
// timeouts; callers control both through the context.
package store
