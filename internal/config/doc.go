// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the server and the terminal client.
//
// Configuration is assembled from several sources. For every field the first
// source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. Config file, JSON or YAML chosen by extension
//  4. Built-in defaults
//
// The entry points are [GetServerConfig] and [GetClientConfig]; both project
// the merged [StructuredConfig] onto the fields their binary needs and
// validate that view.
package config
