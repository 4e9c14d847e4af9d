// Command safetynetctl runs the SafetyNet emergency alerts service.
//
// The service answers read-only queries over an in-memory registry of
// residents, fire-station assignments and medical records, and accepts
// mutations of those three collections over HTTP.
//
// # Quick Start
//
//	# Check a fixture before serving it
//	safetynetctl data validate data/safetynet.json
//
//	# Start the server
//	safetynetctl server --data-file data/safetynet.json --port 8080
//
//	# Block until the server answers
//	safetynetctl wait --port 8080
//
// # Environment Variables
//
//   - SAFETYNET_CONFIG_PATH: directory holding safetynet.yml (default: /etc/safetynet)
//   - SAFETYNET_DATA_FILE: JSON fixture loaded at startup
//   - SAFETYNET_BIND_ADDRESS, SAFETYNET_PORT: listen address
//   - SAFETYNET_LOG_LEVEL: debug, info, warn or error
//   - SAFETYNET_LOG_FORMAT: json or console
//   - SAFETYNET_ACCESS_LOG, SAFETYNET_AUDIT_ENABLED, SAFETYNET_WATCH_DATA,
//     SAFETYNET_METRICS_ENABLED: feature switches
package main
