// Package prompt provides the interactive terminal prompts used by the CLI.
//
// Prompts read line-oriented answers from an io.Reader (stdin in production)
// so tests can drive them from a string. An empty answer, "q" or EOF aborts
// the prompt with ErrCanceled, which callers treat as a clean exit rather
// than a failure.
package prompt
