/*
Package observability provides Prometheus instrumentation for the interpreter.

Metrics are collected through domain.LifecycleHooks, so any machine created with
the hooks returned by Metrics.Hooks reports its steps, tape growth and halts.
*/
package observability
