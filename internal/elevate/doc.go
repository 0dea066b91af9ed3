// Package elevate implements the two-phase startup used for operations that
// need administrator rights. Phase 1 (the unprivileged process) detects the
// missing privilege and relaunches the same executable with the same
// arguments under an elevation request, then exits with no further action.
// Phase 2 (the elevated process) performs the requested operation normally.
// Creator functions never relaunch anything themselves.
package elevate
