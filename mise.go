// Package mise extracts canonical recipe records from publisher HTML.
// Pages are matched to a site profile by domain, structured data
// (schema.org/Recipe JSON-LD) is preferred field by field, and markup
// selectors fill whatever the structured data leaves empty.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, yaml/).
package mise
