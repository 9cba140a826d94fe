// Package engineconfig loads and validates the YAML configuration that
// drives a simulation run: the master seed, model-file paths, and
// optional metrics listener address.
package engineconfig
