// Package snipdoc provides documentation-build helpers for static sites.
// It renders named code snippets, previously extracted into JSON snippet
// files, as HTML code blocks with random anchor ids, exposes a version
// table to documentation templates, and strips markup from HTML fragments.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, nethtml/, goquery/).
package snipdoc
