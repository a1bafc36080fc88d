// Package tabrip automates downloading guitar tabs from an authenticated
// web catalog. It logs in with user-provided credentials, walks a playlist
// page to discover tab links, and saves each tab locally as a PDF or DOCX
// document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, viper/).
package tabrip
