// Package cli wires the cobra command tree: create (headless link
// creation), inspect (link classification), form (interactive mode, also
// the context-menu entry point), integrate (file-manager menu), doctor,
// config, and version. Each mode of operation is an explicit subcommand;
// nothing is inferred from which arguments happen to be present.
package cli
