// Package cli provides the interactive showcase command-line client.
//
// It wires configuration, the local session database, the API adapter and the
// state stores, then runs a REPL. Anyone can browse the public gallery
// (list, search, show, image carousel); after login the admin commands create,
// edit and delete projects. A background watcher probes the server health
// endpoint and shows online/offline in the prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher and runREPL for details.
package cli
