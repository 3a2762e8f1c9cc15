// Package session implements the translation session controller, the
// orchestration core of cloudtranslate. It validates input, runs the
// confirmation gates through a caller-supplied decision function,
// invokes the translation provider and records usage and history
// afterwards. Hosts drive it synchronously, one translation per call.
package session
