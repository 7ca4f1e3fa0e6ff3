// Package core contains pipeline plumbing: channel helpers, worker
// configuration via context, and the locomotive that drives a stage. It holds
// no business logic; lite and demolib build their pipelines on it.
package core
