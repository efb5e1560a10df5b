// Package config loads receiptd configuration.
//
// Configuration is layered, later sources winning:
//  1. Built-in defaults (bind 127.0.0.1:3000, serial scanning enabled)
//  2. A YAML file, typically receiptd.yaml, if one exists
//  3. Environment variables: RECEIPTD_BIND_ADDR, RECEIPTD_DATABASE,
//     RECEIPTD_LOG_LEVEL
//
// A .env file in the working directory is read into the environment first,
// so small deployments can keep everything next to the binary.
//
// Nothing here persists discovery results; the file only carries server
// settings and discovery tuning knobs.
package config
