// Package animation connects a sorting.Stepper to its collaborators.
//
//   - [Session]: the UI-facing controller (create, select, start, stop,
//     interval, reset) guarding one Stepper with a mutex
//   - [Presenter]: receives a frame after every create, step and reset
//   - [Driver]: a background periodic trigger for headless front ends
//
// Interactive front ends may drive a Session from their own event loop by
// calling [Session.Tick] at [Session.Interval].
package animation
