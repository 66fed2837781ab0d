// Package cli provides the interactive chatline client.
//
// It wires configuration, the session store, the identity-authority client,
// the image uploader, and an interactive REPL. On start the bootstrap
// router inspects the stored session exactly once: a present session opens
// the chat surface directly, otherwise the user lands on the
// authentication surface and signs in or registers.
//
// Key flows:
//   - login    — authenticate and persist the session
//   - signup   — upload a profile image, create an account, then sign in
//     explicitly (account creation never establishes a session)
//   - guest    — login pre-filled with the demo credentials
//   - logout   — clear the persisted session
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
