// Package loop is the single-threaded cooperative runtime the game runs on.
//
// Front ends own the real frame loop and call Scheduler.Advance once per
// frame with the elapsed time. Every timer callback, every deferred
// feedback delay and every asynchronous completion posted from a goroutine
// runs inside Advance, on the caller's goroutine, so game state is only ever
// touched from one thread. Bus routes keyboard input to at most one listener.
// Generation lets deferred callbacks detect that the render that scheduled
// them has been replaced.
package loop
