// Package setup implements the interactive GitHub token setup.
//
// Configurator.Run walks a fixed sequence of one-shot decisions:
//
//  1. Print the banner and token instructions
//  2. Skip everything if backend/.env already holds a real token
//  3. Prompt for the token
//  4. Stop without writing if the answer is empty
//  5. Warn and ask for confirmation if the token has an unknown prefix
//  6. Create the backend directory
//  7. Replace backend/.env with the template holding the token
//  8. Print next steps (and optionally verify the token online)
//
// Every early stop is a normal Outcome, not an error. Only filesystem
// failures are returned, wrapped in ErrPersist.
package setup
