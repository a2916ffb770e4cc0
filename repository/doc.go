// Package repository maps entity structs to records in the propman table.
//
// The table is schemaless, so every record read back from it (get, list, and the
// result of create and update) is decoded and validated before it reaches a caller.
// A record that does not conform fails the whole operation with a *DataIntegrityError.
//
// Repository is generic over the entity struct. The typed repositories (Employees,
// Invoices, ...) fix the key and access-pattern arguments of each kind so callers
// never deal with raw key values.
package repository
