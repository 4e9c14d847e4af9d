// Package config loads the safetynet server settings.
//
// Settings come from three places, later ones overriding earlier ones:
//
//   - built-in defaults
//   - $SAFETYNET_CONFIG_PATH/safetynet.yml (default /etc/safetynet)
//   - SAFETYNET_* environment variables
//
// Each attribute remembers which of these it came from so that
// "safetynetctl configuration show" can report it.
package config
