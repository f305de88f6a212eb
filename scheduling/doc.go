// Package scheduling generates multi-facility scheduling instances in the
// style of Hooker (2005) and Heinz and Beck (2012).
//
// GenerateParams is the shared parameter generator. HookerFormulation builds
// the time-indexed late-tasks model and HeinzFormulation the assignment model
// with start-time variables restricted to each task's window.
//
// Times are integer time steps starting at 0; deadlines are real.
package scheduling
