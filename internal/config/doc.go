// Package config wraps Viper to persist CLI preferences under the user's
// home directory (~/.tessbundle/config.yaml) with TESSBUNDLE_* environment
// overrides. Bundle semantics never live here; those belong to the manifest.
package config
