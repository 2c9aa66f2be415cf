// Package console renders parameter forms and credential prompts as plain
// line-oriented dialogues over an io.Reader and io.Writer. It is used when
// stdin is not a terminal and by tests that script the user's answers.
package console
