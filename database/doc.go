// Package database provides connection management, automatic table
// creation, foreign key handling, configuration types, logging, health
// checks, and related utilities built on top of Bun.
package database
