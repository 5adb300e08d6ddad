/*
Package singleton provides lazily constructed, process-wide shared instances.

# Overview

A Registry owns exactly one instance of T. The instance is built on first
access from the argument of whichever caller wins the race to construct it;
every later caller gets that same instance and its argument is ignored.

	reg := singleton.New(computer.NewOS, singleton.WithName("os"))

	first, _ := reg.GetOrCreate("Windows 9.1")
	second, _ := reg.GetOrCreate("Windows 11.1")
	// first == second, first.Name() == "Windows 9.1"

Registries are ordinary values. Create one at startup and pass it to the code
that needs it; tests create a fresh registry per case.

# Double-Checked Locking

GetOrCreate first loads the published instance with an atomic read. Only on a
miss does it take the registry lock, and it checks the slot again before
constructing, since another caller may have finished while this one waited.
The instance is published with an atomic store, so a caller that observes it
on the fast path also observes every write the constructor made.

# Failures

A failed construction leaves the slot empty. The error, wrapped in a
*ConstructionError, goes to the caller that ran the constructor. The next
caller to take the lock, including one that was already waiting, runs its own
attempt with its own argument. Use WithRetry to retry transient constructor
errors before giving up.

# Bounded Waits

GetOrCreateContext stops waiting for the lock when the context is done, and
WithWaitTimeout caps every wait, returning ErrWaitTimeout. A caller that
already holds the lock is never interrupted by another caller's timeout.

# Named Instances

Set keeps one Registry per resource name:

	oses := singleton.NewSet(computer.NewOS)
	office, _ := oses.GetOrCreate("office", "Windows 9.1")
	lab, _ := oses.GetOrCreate("lab", "Linux")
*/
package singleton
