// Package config loads the game configuration.
//
// Values come, in increasing precedence, from built-in defaults, an optional
// rankmatch.yaml file, a .env file and RANKMATCH_ prefixed environment
// variables. The result is validated before it is returned.
package config
