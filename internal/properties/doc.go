// Package properties reads and writes the settings held in a gcloud
// configuration file.
//
// Only four settings are recognized, split over two sections:
//
//	[core]
//	project=<value>
//	account=<value>
//	[compute]
//	zone=<value>
//	region=<value>
//
// Anything else in a file is dropped by Decode. Callers that must keep
// unrecognized sections intact (copying a configuration, for example) should
// copy the file bytes instead of round-tripping through this package.
//
// # Validation
//
// Zones and regions are validated when they are parsed, before they can be
// handed to a Builder:
//
//	region, err := properties.ParseRegion("europe-west1")
//	zone, err := properties.ParseZone("europe-west1-d")
//
// Values are stored verbatim so that Decode(Encode(p)) returns p unchanged.
//
// # Output Formats
//
// Write renders properties as the canonical file format (ini) or as json,
// yaml or toml for display.
package properties
