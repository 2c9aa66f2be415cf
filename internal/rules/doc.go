// Package rules compiles a parameter definition into an input mode and a
// declarative constraint table, and evaluates candidate values against it.
//
// The same RuleSet drives live feedback in every renderer and headless
// validation in tests; nothing outside this package interprets constraints.
package rules
