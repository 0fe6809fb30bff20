// Package config loads run settings from CUE or JSON files.
//
// The embedded schema.cue defines #Config with a default for every field;
// user files are unified with it, so they only name what they change and
// unknown fields are rejected. Command-line flags override the result.
package config
