// Package schema is the key schema registry for the propman single table.
//
// One physical DynamoDB table hosts every entity kind. Each kind is described by a
// [Definition]: its primary key template and up to two secondary access patterns, each
// bound to one of the two shared global secondary index slots. The slots are
// multiplexed across kinds; a kind is told apart by its discriminator tag, which every
// sort key template starts with.
//
// # Key rendering
//
// A [Template] renders as its prefix followed by each attribute value, joined by "#":
//
//	Template{Prefix: "ORG", Attrs: []string{"organizationId"}}          // ORG#org-1
//	Template{Prefix: "PLAN_SERVICE", Attrs: []string{"planId", "planServiceId"}} // PLAN_SERVICE#p1#ps1
//
// Binding a leading subset of sort attributes yields a begins_with condition ending in
// the separator, so "SERVICE_SCHEDULE#p1#" never matches "SERVICE_SCHEDULE#p10#...".
//
// # Invariants
//
// [Registry.Register] rejects definitions that break the multiplexing rules:
//
//   - every sort template (primary and index) starts with the kind tag
//   - at most two index access patterns, on distinct index slots
//   - tenant-scoped kinds include organizationId in every partition template
//   - primary key attributes are unique and the id attribute is one of them
//
// The package does no I/O.
package schema
