// Package entity defines the records stored in the propman table.
//
// Every record embeds Base, which carries the audit timestamps and any attributes the
// struct does not declare. Struct tags drive both the wire format (dynamodbav) and the
// read-boundary rules (validate): required attributes, closed enums, emails and dates.
//
// Key attributes (pk, sk, gsi*) and the entityType discriminator never appear on the
// structs; they are derived from the domain attributes by the schema registry.
package entity
