// Package logger provides leveled console logging for the setup tool.
//
// Info messages are shown only with --verbose and debug messages only with
// --debug. Warnings and errors are always written. All levels go to stderr
// so they never interleave with prompts on stdout.
package logger
