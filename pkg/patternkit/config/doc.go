/*
Package config provides type-safe configuration extraction from map[string]any
and the typed Settings of the patternkit tool.

# Basic Usage

Create a Config from any map and extract values with defaults:

	cfg := config.New(map[string]any{
	    "wait_timeout": "2s",
	    "slots":        3,
	})

	timeout := cfg.Duration("wait_timeout", 0) // 2s
	slots := cfg.Int("slots", 2)               // 3
	missing := cfg.String("missing", "text")   // "text"

Nested YAML/JSON sections are reached with Sub:

	level := cfg.Sub("log").String("level", "info")

All accessors return the default value if the key is missing, the value has
the wrong type, or the conversion would lose precision.

# Settings

Load reads a YAML or JSON file into Settings, falling back to Defaults for
every missing key and validating the result:

	settings, err := config.Load("patternkit.yaml")
	if err != nil {
	    log.Fatal(err)
	}

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation.
*/
package config
