/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package main

// Configuration keys. Environment variables are keys in upper case with «OBJSTORE_» prefix
const (
	cfgSchema         = "schema"
	cfgData           = "data"
	cfgRootClass      = "root_class"
	cfgWSClass        = "ws_class"
	cfgWSCodeField    = "ws_code_field"
	cfgFieldCacheSize = "field_cache_size"
)

const (
	envPrefix      = "OBJSTORE"
	configName     = "objstore"
	configType     = "yaml"
	configFileFlag = "config"
)

// flag names by configuration keys
var configFlags = map[string]string{
	cfgSchema:         "schema",
	cfgData:           "data",
	cfgRootClass:      "root-class",
	cfgWSClass:        "ws-class",
	cfgWSCodeField:    "ws-code-field",
	cfgFieldCacheSize: "field-cache-size",
}
