// Package loader reads and writes station networks as YAML.
//
// A network file lists stations with their coordinates, optional named lines
// (consecutive stations on a line are linked) and optional extra links:
//
//	stations:
//	  - {id: Baker Street, lon: -0.1571, lat: 51.5226}
//	  - {id: Bond Street,  lon: -0.1494, lat: 51.5142}
//	lines:
//	  - name: Jubilee
//	    stations: [Baker Street, Bond Street]
//	links:
//	  - [Baker Street, Regent's Park]
//
// JSON input is accepted as well, since YAML 1.2 is a superset of it.
// Unknown fields are rejected so that typos surface as errors.
package loader
