// Package journal persists engine run history in SQLite.
//
// Each processing run is recorded as one run row plus one row per processed
// file, so operators can audit what a past batch touched and why. The journal
// is quill's own record keeping; it is not the external database sync layer,
// which lives outside this repository.
package journal
