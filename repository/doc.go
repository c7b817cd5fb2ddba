// Package repository provides a generic CRUD repository built on Bun,
// parameterized by an entity model and its create and update schemas. The
// per-entity field mapping is injected, so the repository itself carries no
// entity-specific knowledge.
package repository
