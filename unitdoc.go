// Package unitdoc turns XML descriptions of compilation units into a
// browsable HTML documentation portal and a flat Markdown reference.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., etree/, goquery/, yaml/).
package unitdoc
