// Package preflight verifies a vault folder is fit for processing before a
// batch starts: the folder must exist, be writable, and its filesystem must
// have headroom for rewritten documents. Failed checks are advisory; the
// orchestrator reports them and lets the operator decide.
package preflight
