// Package terminal owns the controlling terminal for the lifetime of the animation.
//
// Features:
//   - Raw mode with non-blocking single-byte key reads
//   - 24-bit truecolor cell painting through direct ANSI sequences
//   - SIGWINCH resize notification queued for the frame loop
//   - Clean terminal restoration on every exit path, including panics
//
// Two backends satisfy the same surface: Session emits escape sequences itself,
// TcellSession delegates to a tcell screen.
package terminal
