// Package loader reads the safetynet JSON fixture and watches it for
// changes.
//
// The fixture is a single object with three arrays:
//
//	{
//	  "persons":        [{"firstName": ..., "lastName": ..., "address": ..., ...}],
//	  "firestations":   [{"address": ..., "station": ...}],
//	  "medicalrecords": [{"firstName": ..., "lastName": ..., "birthdate": "MM/DD/YYYY", ...}]
//	}
package loader
